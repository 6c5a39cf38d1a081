package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/domain"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

func TestResolveProfileCreatesOnFirstSight(t *testing.T) {
	repo := newFakeProfileRepo()
	r := NewResolver(repo, testHeuristic(), zap.NewNop())

	profile, err := r.ResolveProfile(context.Background(), "p1", "desk.culture@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "p1", profile.ID)
	assert.Equal(t, domain.RoleWriter, profile.Role)
	assert.Equal(t, "desk.culture", profile.DisplayName)
	assert.Equal(t, domain.DefaultPreferences(), profile.Preferences)
}

func TestResolveProfileIsIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	r := NewResolver(repo, testHeuristic(), zap.NewNop())
	ctx := context.Background()

	first, err := r.ResolveProfile(ctx, "p1", "root@gmail.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, first.Role)

	// Demote out of band; a later resolve must not re-apply the heuristic.
	require.NoError(t, repo.UpdateRole(ctx, "p1", domain.RoleAudience))

	second, err := r.ResolveProfile(ctx, "p1", "root@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAudience, second.Role)
	assert.Equal(t, 1, repo.createCalls)
}

func TestResolveProfileEmptyEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	r := NewResolver(repo, testHeuristic(), zap.NewNop())

	profile, err := r.ResolveProfile(context.Background(), "p1", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAudience, profile.Role)
	assert.Equal(t, "reader", profile.DisplayName)
}

func TestResolveProfileFailsClosed(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.failGet = errors.New("connection refused")
	r := NewResolver(repo, testHeuristic(), zap.NewNop())

	profile, err := r.ResolveProfile(context.Background(), "p1", "root@gmail.com")
	require.Error(t, err)
	assert.Nil(t, profile)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAVAILABLE", domainErr.Code)
	assert.Zero(t, repo.createCalls)
}

func TestResolveProfileLostInsertRace(t *testing.T) {
	repo := newFakeProfileRepo()
	// A concurrent first login already wrote this row; our first read misses
	// it and our insert fails on the duplicate key.
	repo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "x@gmail.com", Role: domain.RoleWriter}
	repo.missFirstGet = true
	repo.failCreate = errors.New("duplicate key")

	r := NewResolver(repo, testHeuristic(), zap.NewNop())
	resolved, err := r.ResolveProfile(context.Background(), "p1", "x@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleWriter, resolved.Role)
}
