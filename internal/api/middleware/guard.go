package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

// The guards below are the only authorization policies in the API. They run
// after Authenticate and short-circuit before the guarded handler executes.

func identityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

// RequireAuth rejects anonymous requests.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := identityFrom(c); !ok {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admins with 403.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := identityFrom(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if !id.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin permits admins and callers whose identity matches the
// user referenced by the given path parameter (by id or email).
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := identityFrom(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			key := domain.ParseUserKey(c.Param(param))
			if !id.IsAdmin() && !id.Matches(key) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
