package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/events"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// CareersService manages job postings and public applications.
type CareersService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
}

// NewCareersService constructs the service.
func NewCareersService(jobs repository.JobRepository, dispatcher events.Dispatcher) *CareersService {
	return &CareersService{jobs: jobs, dispatcher: dispatcher}
}

// ListPostings returns open postings, newest first.
func (s *CareersService) ListPostings(ctx context.Context) ([]domain.JobPosting, error) {
	result, err := s.jobs.ListPostings(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// SavePosting creates or updates a posting.
func (s *CareersService) SavePosting(ctx context.Context, actor *domain.Profile, posting *domain.JobPosting) (*domain.JobPosting, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if posting.Title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if posting.ID == "" {
		posting.ID = uuid.NewString()
	}
	if err := s.jobs.UpsertPosting(ctx, posting); err != nil {
		return nil, apperrors.MapError(err)
	}
	return posting, nil
}

// DeletePosting removes a posting. Applications already submitted against it
// are kept.
func (s *CareersService) DeletePosting(ctx context.Context, actor *domain.Profile, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.jobs.DeletePosting(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job posting", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// SubmitApplication records a public application against a live posting.
func (s *CareersService) SubmitApplication(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	posting, err := s.jobs.GetPosting(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job posting", map[string]any{"id": app.JobID})
		}
		return nil, apperrors.MapError(err)
	}

	app.ID = uuid.NewString()
	app.JobTitle = posting.Title
	app.Status = domain.ApplicationStatusNew
	if err := s.jobs.CreateApplication(ctx, app); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventApplicationSubmitted,
			Timestamp: time.Now(),
			Payload: events.ApplicationSubmittedPayload{
				ApplicationID: app.ID,
				JobID:         app.JobID,
				JobTitle:      app.JobTitle,
				ApplicantName: app.ApplicantName,
			},
		})
	}
	return app, nil
}

// ListApplications returns every application, newest first. Admin only.
func (s *CareersService) ListApplications(ctx context.Context, actor *domain.Profile) ([]domain.JobApplication, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	result, err := s.jobs.ListApplications(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// UpdateApplicationStatus moves an application through review.
func (s *CareersService) UpdateApplicationStatus(ctx context.Context, actor *domain.Profile, id string, status domain.ApplicationStatus) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.jobs.UpdateApplicationStatus(ctx, id, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job application", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
