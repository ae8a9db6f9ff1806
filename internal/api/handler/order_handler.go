package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/api/metrics"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for the order engine.
type OrderHandler struct {
	service  ports.OrderService
	maxLimit int
}

func NewOrderHandler(service ports.OrderService, maxLimit int) *OrderHandler {
	return &OrderHandler{service: service, maxLimit: maxLimit}
}

// List handles GET /orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {array}   orderResponse
// @Header       200    {string}  Link  "first/prev/next/last pagination links"
// @Failure      401    {object}  map[string]any
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	p := listParams(c, h.maxLimit)
	orders, total, err := h.service.List(c.Request().Context(), p.Page, p.Limit)
	if err != nil {
		return err
	}

	writeLinkHeader(c, p, total)

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /orders/:orderId.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path      string  true  "Order id"
// @Success      200      {object}  orderResponse
// @Failure      401      {object}  map[string]any
// @Failure      404      {object}  map[string]any
// @Router       /orders/{orderId} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Create handles POST /orders.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order data"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.Create(c.Request().Context(), toCreateOrderInput(req))
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Update handles PATCH /orders/:orderId. Only the status is mutable.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path      string              true  "Order id"
// @Param        body     body      updateOrderRequest  true  "New status"
// @Success      200      {object}  orderResponse
// @Failure      400      {object}  map[string]any
// @Failure      404      {object}  map[string]any
// @Router       /orders/{orderId} [patch]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("orderId"), req.Status)
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(order.Status)).Inc()
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /orders/:orderId. Returns the snapshot taken just
// before deletion.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path      string  true  "Order id"
// @Success      200      {object}  orderResponse
// @Failure      401      {object}  map[string]any
// @Failure      404      {object}  map[string]any
// @Router       /orders/{orderId} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	order, err := h.service.Delete(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}
