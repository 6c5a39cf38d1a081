package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/access"
	"github.com/spec-kit/press-service/internal/config"
	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/events"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

func adminActor() *domain.Profile {
	return &domain.Profile{ID: "admin-1", Role: domain.RoleAdmin}
}

func newDirectoryFixture(revoke bool) (*DirectoryService, *fakeStaffRepo, *fakeProfileRepo, *captureDispatcher) {
	staffRepo := newFakeStaffRepo()
	profileRepo := newFakeProfileRepo()
	dispatcher := &captureDispatcher{}
	reconciler := access.NewReconciler(profileRepo, nil, zap.NewNop())

	svc := NewDirectoryService(config.AccessConfig{RevokeOnDelete: revoke}, DirectoryDependencies{
		StaffRepo:  staffRepo,
		Reconciler: reconciler,
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
	return svc, staffRepo, profileRepo, dispatcher
}

func TestSaveStaffDerivesSlug(t *testing.T) {
	svc, staffRepo, _, _ := newDirectoryFixture(false)

	result, err := svc.SaveStaff(context.Background(), adminActor(), &domain.StaffEntry{
		Name:        "Shivendra Singh",
		AccessLevel: domain.RoleWriter,
	})
	require.NoError(t, err)
	assert.Equal(t, "shivendra-singh", result.Entry.Slug)
	assert.Contains(t, staffRepo.entries, "shivendra-singh")

	// No email bound, so no reconciliation was attempted.
	assert.Equal(t, access.OutcomeSkipped, result.Reconciliation)
}

func TestSaveStaffReconcilesMatchingProfile(t *testing.T) {
	svc, _, profileRepo, dispatcher := newDirectoryFixture(false)
	profileRepo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "maya@thepress.example", Role: domain.RoleAudience}

	result, err := svc.SaveStaff(context.Background(), adminActor(), &domain.StaffEntry{
		Name:        "Maya Lopez",
		Email:       "Maya@ThePress.example",
		AccessLevel: domain.RoleWriter,
	})
	require.NoError(t, err)
	assert.Equal(t, access.OutcomeApplied, result.Reconciliation)
	assert.Equal(t, "maya@thepress.example", result.Entry.Email)
	assert.Equal(t, domain.RoleWriter, profileRepo.profiles["p1"].Role)

	reconciled := dispatcher.byType(events.EventRoleReconciled)
	require.Len(t, reconciled, 1)
	payload := reconciled[0].Payload.(events.RoleReconciledPayload)
	assert.Equal(t, "applied", payload.Outcome)
}

func TestSaveStaffSurvivesReconcileNoMatch(t *testing.T) {
	svc, staffRepo, _, _ := newDirectoryFixture(false)

	// Entry email has no profile yet; the directory write must still land.
	result, err := svc.SaveStaff(context.Background(), adminActor(), &domain.StaffEntry{
		Name:        "Future Hire",
		Email:       "newcomer@thepress.example",
		AccessLevel: domain.RoleWriter,
	})
	require.NoError(t, err)
	assert.Equal(t, access.OutcomeNoMatch, result.Reconciliation)
	assert.Contains(t, staffRepo.entries, "future-hire")
}

func TestSaveStaffSurvivesAmbiguousMatch(t *testing.T) {
	svc, staffRepo, profileRepo, _ := newDirectoryFixture(false)
	profileRepo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "dup@thepress.example", Role: domain.RoleAudience}
	profileRepo.profiles["p2"] = &domain.Profile{ID: "p2", Email: "dup@thepress.example", Role: domain.RoleAudience}

	result, err := svc.SaveStaff(context.Background(), adminActor(), &domain.StaffEntry{
		Name:        "Dup Licate",
		Email:       "dup@thepress.example",
		AccessLevel: domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, access.OutcomeAmbiguous, result.Reconciliation)
	assert.Contains(t, staffRepo.entries, "dup-licate")
	assert.Equal(t, domain.RoleAudience, profileRepo.profiles["p1"].Role)
	assert.Equal(t, domain.RoleAudience, profileRepo.profiles["p2"].Role)
}

func TestSaveStaffRejectsInvalidAccessLevel(t *testing.T) {
	svc, _, _, _ := newDirectoryFixture(false)

	_, err := svc.SaveStaff(context.Background(), adminActor(), &domain.StaffEntry{
		Name:        "Bad Level",
		AccessLevel: domain.Role("superuser"),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestSaveStaffRequiresAdmin(t *testing.T) {
	svc, _, _, _ := newDirectoryFixture(false)
	writer := &domain.Profile{ID: "w1", Role: domain.RoleWriter}

	_, err := svc.SaveStaff(context.Background(), writer, &domain.StaffEntry{
		Name:        "Nope",
		AccessLevel: domain.RoleWriter,
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestDeleteStaffKeepsRoleByDefault(t *testing.T) {
	svc, staffRepo, profileRepo, _ := newDirectoryFixture(false)
	profileRepo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "ed@thepress.example", Role: domain.RoleWriter}
	staffRepo.entries["ed-itor"] = &domain.StaffEntry{
		Slug: "ed-itor", Name: "Ed Itor", Email: "ed@thepress.example", AccessLevel: domain.RoleWriter,
	}

	require.NoError(t, svc.DeleteStaff(context.Background(), adminActor(), "ed-itor"))
	assert.NotContains(t, staffRepo.entries, "ed-itor")
	// Asymmetric by default: removing the public entry does not demote.
	assert.Equal(t, domain.RoleWriter, profileRepo.profiles["p1"].Role)
}

func TestDeleteStaffRevokesWhenConfigured(t *testing.T) {
	svc, staffRepo, profileRepo, dispatcher := newDirectoryFixture(true)
	profileRepo.profiles["p1"] = &domain.Profile{ID: "p1", Email: "ed@thepress.example", Role: domain.RoleWriter}
	staffRepo.entries["ed-itor"] = &domain.StaffEntry{
		Slug: "ed-itor", Name: "Ed Itor", Email: "ed@thepress.example", AccessLevel: domain.RoleWriter,
	}

	require.NoError(t, svc.DeleteStaff(context.Background(), adminActor(), "ed-itor"))
	assert.Equal(t, domain.RoleAudience, profileRepo.profiles["p1"].Role)

	deleted := dispatcher.byType(events.EventStaffDeleted)
	require.Len(t, deleted, 1)
	assert.True(t, deleted[0].Payload.(events.StaffDeletedPayload).Revoked)
}

func TestDeleteStaffNotFound(t *testing.T) {
	svc, _, _, _ := newDirectoryFixture(false)

	err := svc.DeleteStaff(context.Background(), adminActor(), "nobody")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

// A staff entry saved before the person has ever logged in: the save lands
// with a no-op reconciliation, and the later first login derives its role from
// the heuristic alone. The two roles coincide by convention (org domain =>
// writer), not because one feeds the other.
func TestStaffEntryBeforeFirstLogin(t *testing.T) {
	svc, _, profileRepo, _ := newDirectoryFixture(false)
	ctx := context.Background()

	result, err := svc.SaveStaff(ctx, adminActor(), &domain.StaffEntry{
		Name:        "Jane Doe",
		Email:       "jane@org.com",
		AccessLevel: domain.RoleWriter,
	})
	require.NoError(t, err)
	require.Equal(t, access.OutcomeNoMatch, result.Reconciliation)

	accessCfg := config.AccessConfig{OrgDomain: "org.com"}
	heuristic := access.NewHeuristic(accessCfg)
	resolver := access.NewResolver(profileRepo, heuristic, zap.NewNop())

	profile, err := resolver.ResolveProfile(ctx, "jane-principal", "jane@org.com")
	require.NoError(t, err)

	// Computed independently of the directory entry.
	assert.Equal(t, heuristic.DeriveRole("jane@org.com"), profile.Role)
	// Convention check only: the intended level happens to match.
	assert.Equal(t, result.Entry.AccessLevel, profile.Role)
}

// Exercises the full grant flow: a profile created through the heuristic is
// later promoted by a directory save and demoted again by a delete with
// revoke-on-delete enabled.
func TestDirectoryGrantLifecycle(t *testing.T) {
	svc, staffRepo, profileRepo, _ := newDirectoryFixture(true)
	ctx := context.Background()

	heuristic := access.NewHeuristic(config.AccessConfig{OrgDomain: "thepress.example"})
	resolver := access.NewResolver(profileRepo, heuristic, zap.NewNop())

	// First login: org-domain email lands as writer.
	profile, err := resolver.ResolveProfile(ctx, "p1", "sam@thepress.example")
	require.NoError(t, err)
	require.Equal(t, domain.RoleWriter, profile.Role)

	// Directory save promotes the same person to admin.
	result, err := svc.SaveStaff(ctx, adminActor(), &domain.StaffEntry{
		Name:        "Sam Chen",
		Email:       "sam@thepress.example",
		AccessLevel: domain.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, access.OutcomeApplied, result.Reconciliation)
	assert.Equal(t, domain.RoleAdmin, profileRepo.profiles["p1"].Role)

	// A repeat of the same login does not reapply the heuristic.
	again, err := resolver.ResolveProfile(ctx, "p1", "sam@thepress.example")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, again.Role)

	// Delete with revoke-on-delete demotes back to audience.
	require.NoError(t, svc.DeleteStaff(ctx, adminActor(), "sam-chen"))
	assert.NotContains(t, staffRepo.entries, "sam-chen")
	assert.Equal(t, domain.RoleAudience, profileRepo.profiles["p1"].Role)
}
