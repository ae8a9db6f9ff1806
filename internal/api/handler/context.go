package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// ctxIdentity extracts the Identity injected by the Authenticate middleware.
// ok is false for anonymous requests; guarded routes never reach a handler
// anonymously, so handlers that require a caller treat !ok as Unauthorized.
func ctxIdentity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get("identity").(domain.Identity)
	return id, ok
}
