package access

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

const fallbackDisplayName = "reader"

// Resolver loads or lazily creates the profile for an authenticated
// principal. It is the only code path that ever creates a profile, so the
// at-most-once-per-principal invariant lives here.
type Resolver struct {
	profiles  repository.ProfileRepository
	heuristic *Heuristic
	logger    *zap.Logger
}

// NewResolver constructs the resolver.
func NewResolver(profiles repository.ProfileRepository, heuristic *Heuristic, logger *zap.Logger) *Resolver {
	return &Resolver{profiles: profiles, heuristic: heuristic, logger: logger}
}

// ResolveProfile returns the stored profile for principalID, creating one on
// first sight. An existing profile is returned unmodified; the heuristic is
// never re-applied. Store failures propagate as errors so callers fail
// closed instead of assuming any role.
func (r *Resolver) ResolveProfile(ctx context.Context, principalID, email string) (*domain.Profile, error) {
	profile, err := r.profiles.GetByID(ctx, principalID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewUnavailable(err)
	}

	created := &domain.Profile{
		ID:          principalID,
		Email:       email,
		DisplayName: displayNameFromEmail(email),
		Role:        r.heuristic.DeriveRole(email),
		Preferences: domain.DefaultPreferences(),
	}
	if email == "" {
		created.Role = domain.RoleAudience
	}

	if err := r.profiles.Create(ctx, created); err != nil {
		// A concurrent first login may have won the insert; the record it
		// wrote is authoritative.
		if existing, getErr := r.profiles.GetByID(ctx, principalID); getErr == nil {
			return existing, nil
		}
		return nil, apperrors.NewUnavailable(err)
	}

	r.logger.Info("profile created",
		zap.String("principal_id", principalID),
		zap.String("role", string(created.Role)))
	return created, nil
}

func displayNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return fallbackDisplayName
	}
	return local
}
