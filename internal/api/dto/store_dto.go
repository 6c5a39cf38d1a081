package dto

import "github.com/spec-kit/press-service/internal/domain"

// SaveProductRequest payload. An empty id creates a new product.
type SaveProductRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Stock       int    `json:"stock" validate:"gte=0"`
}

// ToDomain maps the request onto a domain product.
func (r SaveProductRequest) ToDomain() *domain.Product {
	return &domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		PriceCents:  r.PriceCents,
		Image:       r.Image,
		Category:    r.Category,
		Description: r.Description,
		Stock:       r.Stock,
	}
}

// ProductResponse is the store shape.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		PriceCents:  p.PriceCents,
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
		Stock:       p.Stock,
	}
}
