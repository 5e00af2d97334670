package repository

import (
	"context"

	"github.com/google/uuid"

	"jobradar/internal/database"
	"jobradar/internal/domain/application"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Create inserts the application. On a duplicate (user_id, job_id) pair the
// existing record is returned and created reports false.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, bool, error) {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, job_id, job_title, company_name, apply_link, source, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		a.ID, a.UserID, a.JobID, a.JobTitle, a.Company, a.ApplyLink, a.Source, a.Status, a.AppliedAt,
	)
	if err != nil {
		return application.Application{}, false, err
	}
	if affected > 0 {
		return a, true, nil
	}

	existing, err := r.getByUserAndJob(ctx, a.UserID, a.JobID)
	if err != nil {
		return application.Application{}, false, err
	}
	return existing, false, nil
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, job_title, company_name, apply_link, source, status, applied_at
		 FROM applications
		 WHERE user_id = $1
		 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.JobTitle, &a.Company, &a.ApplyLink, &a.Source, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) getByUserAndJob(ctx context.Context, userID uuid.UUID, jobID string) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_id, job_title, company_name, apply_link, source, status, applied_at
		 FROM applications
		 WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	var a application.Application
	if err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.JobTitle, &a.Company, &a.ApplyLink, &a.Source, &a.Status, &a.AppliedAt); err != nil {
		return application.Application{}, err
	}
	return a, nil
}
