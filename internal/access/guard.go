package access

import "github.com/spec-kit/press-service/internal/domain"

// Surface names a gated area of the site.
type Surface string

const (
	SurfaceAdminDashboard Surface = "admin_dashboard"
	SurfaceWriterTools    Surface = "writer_tools"
	SurfaceOwnProfile     Surface = "own_profile"
)

// CanAccess decides whether the resolved profile may reach a surface. A nil
// profile (unauthenticated principal) is denied every surface. Roles are
// matched exactly; there is no hierarchy, so an admin does not implicitly
// hold the writer surface.
func CanAccess(profile *domain.Profile, surface Surface) bool {
	if profile == nil {
		return false
	}
	switch surface {
	case SurfaceAdminDashboard:
		return profile.Role == domain.RoleAdmin
	case SurfaceWriterTools:
		return profile.Role == domain.RoleWriter
	case SurfaceOwnProfile:
		return true
	default:
		return false
	}
}
