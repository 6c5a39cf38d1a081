package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/press-service/internal/access"
	"github.com/spec-kit/press-service/internal/domain"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

const profileKey = "auth_profile"

// Middleware validates bearer tokens, checks session liveness and resolves
// the caller's profile. The profile is loaded fresh on every request so role
// changes pushed by the reconciler apply immediately.
type Middleware struct {
	tokens   *TokenManager
	sessions *SessionStore
	resolver *access.Resolver
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, sessions *SessionStore, resolver *access.Resolver) *Middleware {
	return &Middleware{tokens: tokens, sessions: sessions, resolver: resolver}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	if _, err := m.sessions.Get(c.Context(), claims.SessionID); err != nil {
		if err == ErrSessionNotFound {
			return apperrors.NewUnauthorized("session expired or revoked")
		}
		return apperrors.MapError(err)
	}

	profile, err := m.resolver.ResolveProfile(c.Context(), claims.Subject, claims.Email)
	if err != nil {
		// Fail closed: an unreachable store means unauthenticated, never a
		// default role.
		return apperrors.MapError(err)
	}

	c.Locals(profileKey, profile)
	return c.Next()
}

// ProfileFromContext retrieves the authenticated caller's profile.
func ProfileFromContext(c *fiber.Ctx) (*domain.Profile, bool) {
	val := c.Locals(profileKey)
	if val == nil {
		return nil, false
	}
	profile, ok := val.(*domain.Profile)
	return profile, ok
}

// RequireSurface gates a route group on a guarded surface. Runs after Handle;
// an absent profile is treated as unauthenticated, a present one with the
// wrong role as forbidden.
func RequireSurface(surface access.Surface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, ok := ProfileFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !access.CanAccess(profile, surface) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
