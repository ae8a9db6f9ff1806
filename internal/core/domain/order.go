package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the kitchen-side state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCanceled   OrderStatus = "canceled"
)

var ErrOrderNotFound = errors.New("order not found")

// IsValid reports whether s is one of the five recognized statuses.
// Transitions are caller-driven: any status may follow any other, so the
// enum check is the only gate on updates.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusDelivering, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// LineItem is one product reference with its quantity inside an order.
type LineItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Order is a purchase transaction. Line items hold product references only;
// expansion against current catalog data happens at read time.
// DateProcessed refreshes on every status update.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Client        string      `json:"client"`
	Items         []LineItem  `json:"products"`
	Status        OrderStatus `json:"status"`
	DateEntry     time.Time   `json:"dateEntry"`
	DateProcessed time.Time   `json:"dateProcessed"`
}
