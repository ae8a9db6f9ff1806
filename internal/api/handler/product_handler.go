package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  ports.ProductService
	maxLimit int
}

func NewProductHandler(service ports.ProductService, maxLimit int) *ProductHandler {
	return &ProductHandler{service: service, maxLimit: maxLimit}
}

// List handles GET /products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {array}   productResponse
// @Header       200    {string}  Link  "first/prev/next/last pagination links"
// @Failure      401    {object}  map[string]any
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	p := listParams(c, h.maxLimit)
	products, total, err := h.service.List(c.Request().Context(), p.Page, p.Limit)
	if err != nil {
		return err
	}

	writeLinkHeader(c, p, total)

	resp := make([]productResponse, len(products))
	for i, product := range products {
		resp[i] = toProductResponse(product)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /products/:productId.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  productResponse
// @Failure      401        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /products/{productId} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create handles POST /products (admin only).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product data"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:  req.Name,
		Price: *req.Price,
		Image: req.Image,
		Type:  req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Update handles PUT /products/:productId (admin only).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string                true  "Product id"
// @Param        body       body      updateProductRequest  true  "Fields to change"
// @Success      200        {object}  productResponse
// @Failure      400        {object}  map[string]any
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /products/{productId} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("productId"), ports.UpdateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
		Type:  req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /products/:productId (admin only). Returns the
// deleted product snapshot.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  productResponse
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /products/{productId} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	product, err := h.service.Delete(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}
