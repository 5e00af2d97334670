package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Application records one user applying to one scraped listing. The job
// fields are denormalized because listings are transient scrape output, not
// rows the record could reference.
type Application struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     string    `json:"job_id"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company_name"`
	ApplyLink string    `json:"apply_link"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

var ErrNotFound = errors.New("application not found")

type Repository interface {
	// Create inserts the application, or returns the existing record when the
	// user already applied to the same job.
	Create(ctx context.Context, a Application) (Application, bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Application, error)
}
