package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/press-service/internal/api/dto"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/service"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// ProfileHandler exposes the caller's own profile.
type ProfileHandler struct {
	profiles *service.ProfileService
	auth     *service.AuthService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profiles *service.ProfileService, authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, auth: authService}
}

// Me handles GET /me.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	profile, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// UpdatePreferences handles PUT /me/preferences.
func (h *ProfileHandler) UpdatePreferences(c *fiber.Ctx) error {
	profile, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.profiles.UpdatePreferences(c.Context(), profile, domain.Preferences{
		MutedTopics:        req.MutedTopics,
		EmailNotifications: req.EmailNotifications,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(updated)})
}

// ChangePassword handles POST /me/password.
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	profile, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.Context(), profile.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}
