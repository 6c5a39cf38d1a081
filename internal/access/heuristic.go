package access

import (
	"strings"

	"github.com/spec-kit/press-service/internal/config"
	"github.com/spec-kit/press-service/internal/domain"
)

// Heuristic derives a provisional role from an email address. It is applied
// exactly once, at profile creation; an explicit staff-directory assignment
// later overrides whatever it produced. The username allow-lists and org
// domain come from configuration so that no personnel identity lives in code.
type Heuristic struct {
	adminUsernames  []string
	writerUsernames []string
	orgDomain       string
}

// NewHeuristic builds a heuristic from access configuration. Inputs are
// normalized to lowercase once, up front.
func NewHeuristic(cfg config.AccessConfig) *Heuristic {
	return &Heuristic{
		adminUsernames:  lowerAll(cfg.AdminUsernames),
		writerUsernames: lowerAll(cfg.WriterUsernames),
		orgDomain:       strings.ToLower(cfg.OrgDomain),
	}
}

// DeriveRole is a pure function of the email: no state, no call-order
// dependence. An empty or malformed email yields audience.
func (h *Heuristic) DeriveRole(email string) domain.Role {
	normalized := strings.ToLower(strings.TrimSpace(email))
	local, domainPart, found := strings.Cut(normalized, "@")
	if !found || local == "" {
		return domain.RoleAudience
	}

	for _, name := range h.adminUsernames {
		if strings.HasPrefix(local, name) {
			return domain.RoleAdmin
		}
	}
	for _, name := range h.writerUsernames {
		if strings.HasPrefix(local, name) {
			return domain.RoleWriter
		}
	}
	if h.orgDomain != "" && domainPart == h.orgDomain {
		return domain.RoleWriter
	}
	return domain.RoleAudience
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.ToLower(strings.TrimSpace(v)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
