package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/press-service/internal/domain"
	"github.com/spec-kit/press-service/internal/repository"
	apperrors "github.com/spec-kit/press-service/pkg/util"
)

// StoreService manages store products. Reads are public, writes admin only.
type StoreService struct {
	products repository.ProductRepository
}

// NewStoreService constructs the service.
func NewStoreService(products repository.ProductRepository) *StoreService {
	return &StoreService{products: products}
}

// ListProducts returns all products.
func (s *StoreService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	result, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// SaveProduct creates or updates a product.
func (s *StoreService) SaveProduct(ctx context.Context, actor *domain.Profile, product *domain.Product) (*domain.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if product.Name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	if product.PriceCents < 0 || product.Stock < 0 {
		return nil, apperrors.NewValidationError("price and stock must be non-negative", nil)
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
		if err := s.products.Create(ctx, product); err != nil {
			return nil, apperrors.MapError(err)
		}
		return product, nil
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, apperrors.MapError(err)
	}
	return product, nil
}

// DeleteProduct removes a product.
func (s *StoreService) DeleteProduct(ctx context.Context, actor *domain.Profile, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
