package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/press-service/internal/access"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/config"
	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// AuthService coordinates registration, sign-in and session lifecycle. Role
// assignment always goes through the resolver; this service never sets a role
// itself.
type AuthService struct {
	credentials repository.CredentialRepository
	resets      repository.PasswordResetRepository
	resolver    *access.Resolver
	sessions    *auth.SessionStore
	tokenMgr    *auth.TokenManager
	bcryptCost  int
	resetTTL    time.Duration
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	CredentialRepo    repository.CredentialRepository
	PasswordResetRepo repository.PasswordResetRepository
	Resolver          *access.Resolver
	Sessions          *auth.SessionStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		credentials: deps.CredentialRepo,
		resets:      deps.PasswordResetRepo,
		resolver:    deps.Resolver,
		sessions:    deps.Sessions,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost:  cfg.Auth.BcryptCost,
		resetTTL:    time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// SignInResult bundles what a successful register/login returns.
type SignInResult struct {
	Profile   *domain.Profile
	Token     string
	ExpiresAt time.Time
}

// Register creates a credential and resolves its initial profile.
func (s *AuthService) Register(ctx context.Context, email, password string) (*SignInResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.NewValidationError("email required", nil)
	}

	if _, err := s.credentials.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewUnavailable(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}

	cred := &domain.Credential{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.credentials.Create(ctx, cred); err != nil {
		return nil, apperrors.MapError(err)
	}

	return s.establishSession(ctx, cred)
}

// Login authenticates a credential and resolves its profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (*SignInResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	cred, err := s.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.NewUnavailable(err)
	}
	if err := auth.ComparePassword(cred.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	return s.establishSession(ctx, cred)
}

func (s *AuthService) establishSession(ctx context.Context, cred *domain.Credential) (*SignInResult, error) {
	profile, err := s.resolver.ResolveProfile(ctx, cred.ID, cred.Email)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	token, exp, err := s.tokenMgr.GenerateToken(cred.ID, cred.Email, sessionID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if err := s.sessions.Create(ctx, auth.Session{
		ID:          sessionID,
		PrincipalID: cred.ID,
		Email:       cred.Email,
		ExpiresAt:   exp,
	}); err != nil {
		return nil, apperrors.NewUnavailable(err)
	}

	return &SignInResult{Profile: profile, Token: token, ExpiresAt: exp}, nil
}

// Logout revokes the session behind the presented token.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	claims, err := s.tokenMgr.ParseToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	return s.sessions.Revoke(ctx, claims.SessionID)
}

// RequestPasswordReset persists a single-use reset token for the email's
// credential. The token value would be delivered out of band.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	cred, err := s.credentials.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("credential", map[string]any{"email": email})
		}
		return nil, apperrors.NewUnavailable(err)
	}

	token := &repository.PasswordResetToken{
		CredentialID: cred.ID,
		Token:        uuid.NewString(),
		ExpiresAt:    time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, apperrors.MapError(err)
	}
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("reset token", nil)
		}
		return apperrors.NewUnavailable(err)
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewValidationError("token expired or used", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.credentials.UpdatePassword(ctx, token.CredentialID, hash); err != nil {
		return apperrors.MapError(err)
	}
	return apperrors.MapError(s.resets.MarkUsed(ctx, token.ID))
}

// ChangePassword verifies the current password before updating.
func (s *AuthService) ChangePassword(ctx context.Context, principalID, currentPassword, newPassword string) error {
	cred, err := s.credentials.GetByID(ctx, principalID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(cred.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	return apperrors.MapError(s.credentials.UpdatePassword(ctx, cred.ID, hash))
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
