package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/core/pagination"
)

// listParams parses the page/limit query parameters with the configured cap.
func listParams(c echo.Context, maxLimit int) pagination.Params {
	return pagination.Parse(c.QueryParam("page"), c.QueryParam("limit"), maxLimit)
}

// writeLinkHeader sets the RFC-5988 Link header for the current list request.
// The link targets preserve the request path and substitute page/limit.
func writeLinkHeader(c echo.Context, p pagination.Params, total int64) {
	base := c.Scheme() + "://" + c.Request().Host + c.Path()
	if header := p.Header(base, total); header != "" {
		c.Response().Header().Set("Link", header)
	}
}
