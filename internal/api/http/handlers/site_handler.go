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

// SiteHandler exposes curated videos and static pages.
type SiteHandler struct {
	site *service.SiteService
}

// NewSiteHandler constructs handler.
func NewSiteHandler(site *service.SiteService) *SiteHandler {
	return &SiteHandler{site: site}
}

// ListVideos handles GET /videos.
func (h *SiteHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.site.ListVideos(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.VideoResponse, 0, len(videos))
	for _, video := range videos {
		responses = append(responses, dto.NewVideoResponse(video))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// SaveVideo handles POST /admin/videos.
func (h *SiteHandler) SaveVideo(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SaveVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	video, err := h.site.SaveVideo(c.Context(), actor, req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewVideoResponse(*video)})
}

// DeleteVideo handles DELETE /admin/videos/:id.
func (h *SiteHandler) DeleteVideo(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.site.DeleteVideo(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListPages handles GET /pages.
func (h *SiteHandler) ListPages(c *fiber.Ctx) error {
	pages, err := h.site.ListPages(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.PageResponse, 0, len(pages))
	for _, page := range pages {
		responses = append(responses, dto.NewPageResponse(page))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// GetPage handles GET /pages/:slug.
func (h *SiteHandler) GetPage(c *fiber.Ctx) error {
	page, err := h.site.GetPage(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPageResponse(*page)})
}

// SavePage handles POST /admin/pages.
func (h *SiteHandler) SavePage(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SavePageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	page, err := h.site.SavePage(c.Context(), actor, &domain.PageContent{
		Slug:    req.Slug,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPageResponse(*page)})
}
