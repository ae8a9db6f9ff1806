package ports

import (
	"context"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// ProductRepository defines persistence operations for the products collection.
type ProductRepository interface {
	// List returns one page of products in insertion order plus the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Product, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs returns the products whose ids exist; missing ids are simply
	// absent from the result, callers decide whether that is an error.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
