package service

import (
	"github.com/spec-kit/press-service/internal/access"
	"github.com/spec-kit/press-service/internal/domain"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// Services re-check the same surface rules the HTTP guard applies. The route
// guard is advisory; these checks are the enforcement.

func requireAdmin(actor *domain.Profile) error {
	if !access.CanAccess(actor, access.SurfaceAdminDashboard) {
		return apperrors.NewForbidden("admin role required")
	}
	return nil
}

func requireEditor(actor *domain.Profile) error {
	if access.CanAccess(actor, access.SurfaceAdminDashboard) || access.CanAccess(actor, access.SurfaceWriterTools) {
		return nil
	}
	return apperrors.NewForbidden("writer or admin role required")
}
