package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a sellable menu item. DateEntry is set once at creation and
// never mutated afterwards.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Type      string    `json:"type"`
	DateEntry time.Time `json:"dateEntry"`
}
