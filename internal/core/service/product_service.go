package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

// ProductService implements the Product Catalog.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context, page, limit int) ([]*domain.Product, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if in.Price < 0 || !isFinite(in.Price) {
		return nil, fmt.Errorf("%w: price must be a non-negative number", domain.ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.Product{
		Name:      in.Name,
		Price:     in.Price,
		Image:     in.Image,
		Type:      in.Type,
		DateEntry: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name must be a non-empty string", domain.ErrInvalidInput)
	}
	if in.Price != nil && (*in.Price <= 0 || !isFinite(*in.Price)) {
		return nil, fmt.Errorf("%w: price must be a positive number", domain.ErrInvalidInput)
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Type != nil {
		product.Type = *in.Type
	}

	// DateEntry is immutable; the repository never rewrites it.
	return s.repo.Update(ctx, id, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return product, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
