package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/press-service/internal/api/dto"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/service"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// StaffHandler exposes the public staff directory and its admin management
// endpoints.
type StaffHandler struct {
	directory *service.DirectoryService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(directory *service.DirectoryService) *StaffHandler {
	return &StaffHandler{directory: directory}
}

// List handles GET /staff (public, no access levels exposed).
func (h *StaffHandler) List(c *fiber.Ctx) error {
	entries, err := h.directory.ListStaff(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.StaffResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewStaffResponse(entry, false))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Get handles GET /staff/:slug (public).
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	entry, err := h.directory.GetStaff(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffResponse(*entry, false)})
}

// AdminList handles GET /admin/staff, including access levels.
func (h *StaffHandler) AdminList(c *fiber.Ctx) error {
	entries, err := h.directory.ListStaff(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.StaffResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewStaffResponse(entry, true))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Save handles POST /admin/staff. The response reports both the directory
// write and the reconciliation outcome separately.
func (h *StaffHandler) Save(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SaveStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	entry, err := req.ToDomain()
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	result, err := h.directory.SaveStaff(c.Context(), actor, entry)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.StaffSaveResponse{
			Entry:          dto.NewStaffResponse(*result.Entry, true),
			DirectorySaved: true,
			Reconciliation: string(result.Reconciliation),
		},
	})
}

// Delete handles DELETE /admin/staff/:slug.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.directory.DeleteStaff(c.Context(), actor, c.Params("slug")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
