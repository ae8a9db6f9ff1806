package ports

import (
	"context"
	"time"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// OrderRepository defines persistence operations for the orders collection.
type OrderRepository interface {
	// List returns one page of orders in insertion order plus the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Order, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// UpdateStatus sets the status and refreshes dateProcessed in one write.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, processedAt time.Time) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
