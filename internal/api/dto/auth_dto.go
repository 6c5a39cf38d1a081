package dto

import (
	"time"

	"github.com/spec-kit/press-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest payload for sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest payload for initiating reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest payload for confirming reset.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ProfileResponse is the caller-visible profile shape.
type ProfileResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email,omitempty"`
	DisplayName string             `json:"display_name"`
	Role        domain.Role        `json:"role"`
	Preferences domain.Preferences `json:"preferences"`
}

// NewProfileResponse maps a domain profile.
func NewProfileResponse(profile *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Role:        profile.Role,
		Preferences: profile.Preferences,
	}
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PreferencesRequest payload for preference updates.
type PreferencesRequest struct {
	MutedTopics        []string `json:"muted_topics"`
	EmailNotifications bool     `json:"email_notifications"`
}
