package ports

import (
	"context"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new product. Image and Type
// default to empty strings when omitted.
type CreateProductInput struct {
	Name  string
	Price float64
	Image string
	Type  string
}

// UpdateProductInput is a partial update; nil means "leave unchanged".
type UpdateProductInput struct {
	Name  *string
	Price *float64
	Image *string
	Type  *string
}

func (in UpdateProductInput) Empty() bool {
	return in.Name == nil && in.Price == nil && in.Image == nil && in.Type == nil
}

// ProductService is the Product Catalog.
type ProductService interface {
	List(ctx context.Context, page, limit int) ([]*domain.Product, int64, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}
