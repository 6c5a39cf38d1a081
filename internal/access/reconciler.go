package access

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/observability"
	"github.com/spec-kit/press-service/internal/repository"
)

// ReconcileOutcome classifies a reconciliation attempt so callers can report
// partial success (directory saved, role push no-op) to operators.
type ReconcileOutcome string

const (
	OutcomeApplied   ReconcileOutcome = "applied"
	OutcomeNoMatch   ReconcileOutcome = "no_match"
	OutcomeAmbiguous ReconcileOutcome = "ambiguous"
	OutcomeFailed    ReconcileOutcome = "failed"
	// OutcomeSkipped marks saves where no reconciliation was attempted
	// because the entry has no bound email.
	OutcomeSkipped ReconcileOutcome = "skipped"
)

// Applied reports whether the profile role was actually overwritten.
func (o ReconcileOutcome) Applied() bool {
	return o == OutcomeApplied
}

// Reconciler pushes a staff entry's intended access level onto the matching
// identity profile. It is a one-shot push at save time, not a subscription:
// later out-of-band edits to the profile are not re-synced until the next
// directory save.
type Reconciler struct {
	profiles repository.ProfileRepository
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewReconciler constructs the reconciler.
func NewReconciler(profiles repository.ProfileRepository, metrics *observability.Metrics, logger *zap.Logger) *Reconciler {
	return &Reconciler{profiles: profiles, metrics: metrics, logger: logger}
}

// Reconcile overwrites the role of the single profile matching email. Zero or
// multiple matches are a logged no-op, not an error: the directory save that
// triggered the push has already succeeded and must stay successful. The role
// is a flat enum, so no hierarchy check is made; an admin demoting their own
// entry takes effect immediately.
func (r *Reconciler) Reconcile(ctx context.Context, email string, newRole domain.Role) ReconcileOutcome {
	outcome := r.reconcile(ctx, email, newRole)
	r.metrics.RecordReconcile(string(outcome))
	return outcome
}

func (r *Reconciler) reconcile(ctx context.Context, email string, newRole domain.Role) ReconcileOutcome {
	matches, err := r.profiles.FindByEmail(ctx, email)
	if err != nil {
		r.logger.Error("reconcile lookup failed", zap.String("email", email), zap.Error(err))
		return OutcomeFailed
	}

	switch len(matches) {
	case 1:
	case 0:
		r.logger.Warn("reconcile skipped: no profile for email", zap.String("email", email))
		return OutcomeNoMatch
	default:
		r.logger.Warn("reconcile skipped: multiple profiles for email",
			zap.String("email", email), zap.Int("matches", len(matches)))
		return OutcomeAmbiguous
	}

	target := matches[0]
	if err := r.profiles.UpdateRole(ctx, target.ID, newRole); err != nil {
		r.logger.Error("reconcile role update failed",
			zap.String("profile_id", target.ID), zap.Error(err))
		return OutcomeFailed
	}

	r.logger.Info("profile role reconciled",
		zap.String("profile_id", target.ID),
		zap.String("old_role", string(target.Role)),
		zap.String("new_role", string(newRole)))
	return OutcomeApplied
}
