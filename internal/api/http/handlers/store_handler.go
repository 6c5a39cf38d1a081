package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/press-service/internal/api/dto"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/service"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// StoreHandler exposes store product endpoints.
type StoreHandler struct {
	store *service.StoreService
}

// NewStoreHandler constructs handler.
func NewStoreHandler(store *service.StoreService) *StoreHandler {
	return &StoreHandler{store: store}
}

// List handles GET /products.
func (h *StoreHandler) List(c *fiber.Ctx) error {
	products, err := h.store.ListProducts(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, dto.NewProductResponse(product))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Save handles POST /admin/products.
func (h *StoreHandler) Save(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SaveProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	product, err := h.store.SaveProduct(c.Context(), actor, req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewProductResponse(*product)})
}

// Delete handles DELETE /admin/products/:id.
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.store.DeleteProduct(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
