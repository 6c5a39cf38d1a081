package service

import (
	"context"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// ProfileService exposes a principal's own profile. Preferences are the only
// mutable part here; roles are written exclusively by the reconciler.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// UpdatePreferences overwrites the caller's own preference set. Last write
// wins; preferences and role are disjoint fields so a concurrent
// reconciliation is not clobbered.
func (s *ProfileService) UpdatePreferences(ctx context.Context, actor *domain.Profile, prefs domain.Preferences) (*domain.Profile, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if prefs.MutedTopics == nil {
		prefs.MutedTopics = []string{}
	}
	if err := s.profiles.UpdatePreferences(ctx, actor.ID, prefs); err != nil {
		return nil, apperrors.MapError(err)
	}
	actor.Preferences = prefs
	return actor, nil
}
