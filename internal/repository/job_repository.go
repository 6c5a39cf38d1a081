package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/press-service/internal/domain"
)

// JobRepository handles persistence for job postings and their applications.
type JobRepository interface {
	UpsertPosting(ctx context.Context, posting *domain.JobPosting) error
	GetPosting(ctx context.Context, id string) (*domain.JobPosting, error)
	ListPostings(ctx context.Context) ([]domain.JobPosting, error)
	DeletePosting(ctx context.Context, id string) error

	CreateApplication(ctx context.Context, app *domain.JobApplication) error
	ListApplications(ctx context.Context) ([]domain.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates the repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) UpsertPosting(ctx context.Context, posting *domain.JobPosting) error {
	const query = `
        INSERT INTO job_postings (id, title, short_description, long_description, skills, location, job_type)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (id) DO UPDATE SET
            title=EXCLUDED.title,
            short_description=EXCLUDED.short_description,
            long_description=EXCLUDED.long_description,
            skills=EXCLUDED.skills,
            location=EXCLUDED.location,
            job_type=EXCLUDED.job_type,
            updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		posting.ID,
		posting.Title,
		posting.ShortDescription,
		posting.LongDescription,
		posting.Skills,
		posting.Location,
		string(posting.Type),
	).Scan(&posting.CreatedAt, &posting.UpdatedAt)
}

func (r *jobRepository) GetPosting(ctx context.Context, id string) (*domain.JobPosting, error) {
	const query = `
        SELECT id, title, short_description, long_description, skills, location, job_type, created_at, updated_at
        FROM job_postings WHERE id=$1`

	return scanPosting(r.pool.QueryRow(ctx, query, id))
}

func (r *jobRepository) ListPostings(ctx context.Context) ([]domain.JobPosting, error) {
	const query = `
        SELECT id, title, short_description, long_description, skills, location, job_type, created_at, updated_at
        FROM job_postings ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JobPosting
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *posting)
	}
	return result, rows.Err()
}

func (r *jobRepository) DeletePosting(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_postings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) CreateApplication(ctx context.Context, app *domain.JobApplication) error {
	const query = `
        INSERT INTO job_applications (id, job_id, job_title, applicant_name, email, linkedin_url, portfolio_url, resume_url, pitch, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING submitted_at`

	return r.pool.QueryRow(ctx, query,
		app.ID,
		app.JobID,
		app.JobTitle,
		app.ApplicantName,
		app.Email,
		app.LinkedInURL,
		app.PortfolioURL,
		app.ResumeURL,
		app.Pitch,
		string(app.Status),
	).Scan(&app.SubmittedAt)
}

func (r *jobRepository) ListApplications(ctx context.Context) ([]domain.JobApplication, error) {
	const query = `
        SELECT id, job_id, job_title, applicant_name, email, linkedin_url, portfolio_url, resume_url, pitch, status, submitted_at
        FROM job_applications ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JobApplication
	for rows.Next() {
		var (
			app    domain.JobApplication
			status string
		)
		if err := rows.Scan(
			&app.ID,
			&app.JobID,
			&app.JobTitle,
			&app.ApplicantName,
			&app.Email,
			&app.LinkedInURL,
			&app.PortfolioURL,
			&app.ResumeURL,
			&app.Pitch,
			&status,
			&app.SubmittedAt,
		); err != nil {
			return nil, err
		}
		parsed, err := domain.ParseApplicationStatus(status)
		if err != nil {
			return nil, fmt.Errorf("application %s: %w", app.ID, err)
		}
		app.Status = parsed
		result = append(result, app)
	}
	return result, rows.Err()
}

func (r *jobRepository) UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE job_applications SET status=$1 WHERE id=$2`, string(status), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPosting(row rowScanner) (*domain.JobPosting, error) {
	var (
		posting domain.JobPosting
		jobType string
	)
	if err := row.Scan(
		&posting.ID,
		&posting.Title,
		&posting.ShortDescription,
		&posting.LongDescription,
		&posting.Skills,
		&posting.Location,
		&jobType,
		&posting.CreatedAt,
		&posting.UpdatedAt,
	); err != nil {
		return nil, err
	}
	posting.Type = domain.JobType(jobType)
	return &posting, nil
}
