package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobradar/internal/domain/application"
)

var ErrMissingJobFields = errors.New("job_id, job_title and company_name are required")

type ApplicationUsecase struct {
	apps application.Repository
	now  func() time.Time
}

func NewApplicationUsecase(apps application.Repository) *ApplicationUsecase {
	return &ApplicationUsecase{apps: apps, now: time.Now}
}

type ApplyInput struct {
	JobID     string
	JobTitle  string
	Company   string
	ApplyLink string
	Source    string
}

// Apply records the application. Reapplying to the same job returns the
// original record with created=false instead of an error.
func (u *ApplicationUsecase) Apply(ctx context.Context, userID uuid.UUID, in ApplyInput) (application.Application, bool, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	in.JobTitle = strings.TrimSpace(in.JobTitle)
	in.Company = strings.TrimSpace(in.Company)
	if in.JobID == "" || in.JobTitle == "" || in.Company == "" {
		return application.Application{}, false, ErrMissingJobFields
	}

	return u.apps.Create(ctx, application.Application{
		ID:        uuid.New(),
		UserID:    userID,
		JobID:     in.JobID,
		JobTitle:  in.JobTitle,
		Company:   in.Company,
		ApplyLink: strings.TrimSpace(in.ApplyLink),
		Source:    strings.TrimSpace(in.Source),
		Status:    "applied",
		AppliedAt: u.now().UTC(),
	})
}

func (u *ApplicationUsecase) ListForUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	return u.apps.ListByUser(ctx, userID)
}
