package ports

import (
	"context"
	"time"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// OrderItemInput is one requested line item.
type OrderItemInput struct {
	ProductID string
	Qty       int
}

// CreateOrderInput carries the data for a new order. Client defaults to
// "client" when empty.
type CreateOrderInput struct {
	UserID string
	Client string
	Items  []OrderItemInput
}

// ExpandedItem joins a line item with the current catalog snapshot of its
// product. Product carries only the id when the product was deleted after
// the order was placed.
type ExpandedItem struct {
	Qty     int            `json:"qty"`
	Product domain.Product `json:"product"`
}

// ExpandedOrder is the presentation view of an order: line items joined with
// current product data at read time.
type ExpandedOrder struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	Client        string             `json:"client"`
	Items         []ExpandedItem     `json:"products"`
	Status        domain.OrderStatus `json:"status"`
	DateEntry     time.Time          `json:"dateEntry"`
	DateProcessed time.Time          `json:"dateProcessed"`
}

// OrderService is the Order Engine.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*ExpandedOrder, error)
	List(ctx context.Context, page, limit int) ([]*ExpandedOrder, int64, error)
	Get(ctx context.Context, id string) (*ExpandedOrder, error)
	UpdateStatus(ctx context.Context, id string, status string) (*ExpandedOrder, error)
	Delete(ctx context.Context, id string) (*ExpandedOrder, error)
}
