package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/domain"
)

func TestReconcileAppliesSingleMatch(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "desk@thepress.example", Role: domain.RoleAudience}
	r := NewReconciler(repo, nil, zap.NewNop())

	outcome := r.Reconcile(context.Background(), "desk@thepress.example", domain.RoleWriter)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.True(t, outcome.Applied())
	assert.Equal(t, domain.RoleWriter, repo.profiles["p1"].Role)
}

func TestReconcileOverwritesUnconditionally(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "boss@thepress.example", Role: domain.RoleAdmin}
	r := NewReconciler(repo, nil, zap.NewNop())

	// Flat enum: demoting an admin is just another overwrite.
	outcome := r.Reconcile(context.Background(), "boss@thepress.example", domain.RoleAudience)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, domain.RoleAudience, repo.profiles["p1"].Role)
}

func TestReconcileNoMatch(t *testing.T) {
	repo := newFakeProfileRepo()
	r := NewReconciler(repo, nil, zap.NewNop())

	outcome := r.Reconcile(context.Background(), "ghost@thepress.example", domain.RoleWriter)
	assert.Equal(t, OutcomeNoMatch, outcome)
	assert.False(t, outcome.Applied())
}

func TestReconcileAmbiguousIsNoOp(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "shared@thepress.example", Role: domain.RoleAudience}
	repo.profiles["p2"] = &domain.Profile{ID: "p2", Email: "shared@thepress.example", Role: domain.RoleAudience}
	r := NewReconciler(repo, nil, zap.NewNop())

	outcome := r.Reconcile(context.Background(), "shared@thepress.example", domain.RoleAdmin)
	require.Equal(t, OutcomeAmbiguous, outcome)

	// Neither profile was touched.
	assert.Equal(t, domain.RoleAudience, repo.profiles["p1"].Role)
	assert.Equal(t, domain.RoleAudience, repo.profiles["p2"].Role)
}

func TestReconcileLookupFailure(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.failFind = errors.New("connection refused")
	r := NewReconciler(repo, nil, zap.NewNop())

	outcome := r.Reconcile(context.Background(), "x@thepress.example", domain.RoleWriter)
	assert.Equal(t, OutcomeFailed, outcome)
}

func TestReconcileUpdateFailure(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "x@thepress.example", Role: domain.RoleAudience}
	repo.failUpdate = errors.New("connection reset")
	r := NewReconciler(repo, nil, zap.NewNop())

	outcome := r.Reconcile(context.Background(), "x@thepress.example", domain.RoleWriter)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, domain.RoleAudience, repo.profiles["p1"].Role)
}
