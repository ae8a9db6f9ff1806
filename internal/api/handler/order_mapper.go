package handler

import "github.com/burger-queen/ordering-api/internal/core/ports"

func toCreateOrderInput(req createOrderRequest) ports.CreateOrderInput {
	items := make([]ports.OrderItemInput, len(req.Products))
	for i, item := range req.Products {
		items[i] = ports.OrderItemInput{ProductID: item.Product.ID, Qty: item.Qty}
	}
	return ports.CreateOrderInput{
		UserID: req.UserID,
		Client: req.Client,
		Items:  items,
	}
}

func toOrderResponse(o *ports.ExpandedOrder) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		product := item.Product
		items[i] = orderItemResponse{
			Qty:     item.Qty,
			Product: toProductResponse(&product),
		}
	}
	return orderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Client:        o.Client,
		Products:      items,
		Status:        string(o.Status),
		DateEntry:     o.DateEntry,
		DateProcessed: o.DateProcessed,
	}
}
