package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/press-service/internal/api/dto"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/service"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// CareersHandler exposes job postings and applications.
type CareersHandler struct {
	careers *service.CareersService
}

// NewCareersHandler constructs handler.
func NewCareersHandler(careers *service.CareersService) *CareersHandler {
	return &CareersHandler{careers: careers}
}

// ListJobs handles GET /careers/jobs.
func (h *CareersHandler) ListJobs(c *fiber.Ctx) error {
	postings, err := h.careers.ListPostings(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.JobResponse, 0, len(postings))
	for _, posting := range postings {
		responses = append(responses, dto.NewJobResponse(posting))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Apply handles POST /careers/jobs/:id/applications (public).
func (h *CareersHandler) Apply(c *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	app, err := h.careers.SubmitApplication(c.Context(), req.ToDomain(c.Params("id")))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewApplicationResponse(*app)})
}

// SaveJob handles POST /admin/jobs.
func (h *CareersHandler) SaveJob(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SaveJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	posting, err := h.careers.SavePosting(c.Context(), actor, req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewJobResponse(*posting)})
}

// DeleteJob handles DELETE /admin/jobs/:id.
func (h *CareersHandler) DeleteJob(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.careers.DeletePosting(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListApplications handles GET /admin/applications.
func (h *CareersHandler) ListApplications(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	apps, err := h.careers.ListApplications(c.Context(), actor)
	if err != nil {
		return err
	}
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, dto.NewApplicationResponse(app))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// UpdateApplicationStatus handles PUT /admin/applications/:id/status.
func (h *CareersHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	status, err := domain.ParseApplicationStatus(req.Status)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	if err := h.careers.UpdateApplicationStatus(c.Context(), actor, c.Params("id"), status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}
