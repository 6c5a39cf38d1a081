package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/press-service/internal/api/dto"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/service"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// ArticlesHandler exposes article read and write endpoints.
type ArticlesHandler struct {
	content *service.ContentService
}

// NewArticlesHandler constructs handler.
func NewArticlesHandler(content *service.ContentService) *ArticlesHandler {
	return &ArticlesHandler{content: content}
}

// List handles GET /articles.
func (h *ArticlesHandler) List(c *fiber.Ctx) error {
	filters := service.ArticleListFilters{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if author := c.Query("author"); author != "" {
		filters.Author = &author
	}
	if featuredRaw := c.Query("featured"); featuredRaw != "" {
		featured, err := strconv.ParseBool(featuredRaw)
		if err != nil {
			return apperrors.NewValidationError("invalid featured filter", nil)
		}
		filters.Featured = &featured
	}

	articles, err := h.content.ListArticles(c.Context(), filters)
	if err != nil {
		return err
	}

	summaries := make([]dto.ArticleSummary, 0, len(articles))
	for _, article := range articles {
		summaries = append(summaries, dto.NewArticleSummary(article))
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// Get handles GET /articles/:id.
func (h *ArticlesHandler) Get(c *fiber.Ctx) error {
	article, err := h.content.GetArticle(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewArticleDetail(article)})
}

// Related handles GET /articles/:id/related.
func (h *ArticlesHandler) Related(c *fiber.Ctx) error {
	related, err := h.content.RelatedArticles(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	summaries := make([]dto.ArticleSummary, 0, len(related))
	for _, article := range related {
		summaries = append(summaries, dto.NewArticleSummary(article))
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// Save handles POST on the writer and admin article routes.
func (h *ArticlesHandler) Save(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SaveArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	article, err := h.content.SaveArticle(c.Context(), actor, req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewArticleDetail(article)})
}

// Delete handles DELETE /admin/articles/:id.
func (h *ArticlesHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.content.DeleteArticle(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
