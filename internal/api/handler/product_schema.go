package handler

import (
	"time"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

type createProductRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Price *float64 `json:"price" validate:"required"`
	Image string   `json:"image"`
	Type  string   `json:"type"`
}

// updateProductRequest is a partial update; nil pointers mean "unchanged".
type updateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
	Type  *string  `json:"type"`
}

type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Type      string    `json:"type"`
	DateEntry time.Time `json:"dateEntry"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Type:      p.Type,
		DateEntry: p.DateEntry,
	}
}
