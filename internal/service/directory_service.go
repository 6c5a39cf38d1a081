package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/access"
	"github.com/spec-kit/press-service/internal/config"
	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/events"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// DirectoryService manages the public staff directory and drives role
// reconciliation. The directory write and the role push are a deliberate
// two-step, non-transactional saga: the write must be durable first, and a
// failed push never fails the save.
type DirectoryService struct {
	staff      repository.StaffRepository
	reconciler *access.Reconciler
	dispatcher events.Dispatcher
	logger     *zap.Logger
	revoke     bool
}

// DirectoryDependencies encapsulates requirements for the directory service.
type DirectoryDependencies struct {
	StaffRepo  repository.StaffRepository
	Reconciler *access.Reconciler
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewDirectoryService constructs the service.
func NewDirectoryService(cfg config.AccessConfig, deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		staff:      deps.StaffRepo,
		reconciler: deps.Reconciler,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		revoke:     cfg.RevokeOnDelete,
	}
}

// StaffSaveResult reports both halves of the save saga so callers can render
// partial success: the entry is durable even when the role push was a no-op.
type StaffSaveResult struct {
	Entry          *domain.StaffEntry
	Reconciliation access.ReconcileOutcome
}

// ListStaff returns all directory entries.
func (s *DirectoryService) ListStaff(ctx context.Context) ([]domain.StaffEntry, error) {
	entries, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

// GetStaff fetches one entry by slug.
func (s *DirectoryService) GetStaff(ctx context.Context, slug string) (*domain.StaffEntry, error) {
	entry, err := s.staff.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff entry", map[string]any{"slug": slug})
		}
		return nil, apperrors.MapError(err)
	}
	return entry, nil
}

// SaveStaff upserts a directory entry (full replace) and then, when the entry
// carries an email, pushes its access level onto the matching profile. The
// slug is derived from the name when absent; derivation is deterministic so a
// retried save hits the same row.
func (s *DirectoryService) SaveStaff(ctx context.Context, actor *domain.Profile, entry *domain.StaffEntry) (*StaffSaveResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !entry.AccessLevel.Valid() {
		return nil, apperrors.NewValidationError("invalid access level", map[string]any{"access_level": entry.AccessLevel})
	}
	if entry.Slug == "" {
		entry.Slug = domain.DeriveSlug(entry.Name)
	}
	if entry.Slug == "" {
		return nil, apperrors.NewValidationError("name required to derive slug", nil)
	}
	entry.Email = strings.ToLower(strings.TrimSpace(entry.Email))

	if err := s.staff.Upsert(ctx, entry); err != nil {
		return nil, apperrors.MapError(err)
	}

	// Directory write is durable past this point; reconciliation is
	// best-effort and sequential, never concurrent with the write.
	outcome := access.OutcomeSkipped
	if entry.Email != "" {
		outcome = s.reconciler.Reconcile(ctx, entry.Email, entry.AccessLevel)
		s.publishReconciled(ctx, actor, entry.Email, entry.AccessLevel, outcome)
	}

	s.publish(ctx, actor, events.EventStaffSaved, events.StaffSavedPayload{
		Slug:        entry.Slug,
		Email:       entry.Email,
		AccessLevel: entry.AccessLevel,
	})
	return &StaffSaveResult{Entry: entry, Reconciliation: outcome}, nil
}

// DeleteStaff removes the public entry. The bound profile keeps its role
// unless revoke-on-delete is configured, in which case a single-match profile
// is demoted to audience through the same reconciler path.
func (s *DirectoryService) DeleteStaff(ctx context.Context, actor *domain.Profile, slug string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	entry, err := s.staff.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("staff entry", map[string]any{"slug": slug})
		}
		return apperrors.MapError(err)
	}

	if err := s.staff.Delete(ctx, slug); err != nil {
		return apperrors.MapError(err)
	}

	revoked := false
	if s.revoke && entry.Email != "" {
		outcome := s.reconciler.Reconcile(ctx, entry.Email, domain.RoleAudience)
		revoked = outcome.Applied()
		s.publishReconciled(ctx, actor, entry.Email, domain.RoleAudience, outcome)
	}

	s.publish(ctx, actor, events.EventStaffDeleted, events.StaffDeletedPayload{
		Slug:    slug,
		Email:   entry.Email,
		Revoked: revoked,
	})
	return nil
}

func (s *DirectoryService) publishReconciled(ctx context.Context, actor *domain.Profile, email string, role domain.Role, outcome access.ReconcileOutcome) {
	s.publish(ctx, actor, events.EventRoleReconciled, events.RoleReconciledPayload{
		Email:   email,
		NewRole: role,
		Outcome: string(outcome),
	})
}

func (s *DirectoryService) publish(ctx context.Context, actor *domain.Profile, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
