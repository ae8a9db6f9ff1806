package handler

import "time"

type productRefRequest struct {
	ID string `json:"id"`
}

type orderItemRequest struct {
	Qty     int               `json:"qty"`
	Product productRefRequest `json:"product"`
}

type createOrderRequest struct {
	UserID   string             `json:"userId"`
	Client   string             `json:"client"`
	Products []orderItemRequest `json:"products"`
}

type updateOrderRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	Qty     int             `json:"qty"`
	Product productResponse `json:"product"`
}

// orderResponse is the expanded order view: line items joined with current
// product data.
type orderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	Client        string              `json:"client"`
	Products      []orderItemResponse `json:"products"`
	Status        string              `json:"status"`
	DateEntry     time.Time           `json:"dateEntry"`
	DateProcessed time.Time           `json:"dateProcessed"`
}
