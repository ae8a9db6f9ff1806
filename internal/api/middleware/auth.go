package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/core/domain"
	"github.com/burger-queen/ordering-api/internal/core/ports"
)

// identityKey is the context key the resolved Identity is stored under.
const identityKey = "identity"

// Authenticate resolves the Authorization header into an Identity and injects
// it into the request context. A missing header or a non-bearer scheme is not
// an error: the request proceeds anonymously and the guards decide. A bearer
// token that fails verification rejects the whole request (403), and a valid
// token whose subject no longer exists rejects with 404. Nothing is cached;
// every request re-verifies.
func Authenticate(tokens ports.TokenManager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			uid, err := tokens.Verify(parts[1])
			if err != nil {
				return err
			}

			user, err := users.FindByKey(c.Request().Context(), domain.UserKey{ID: uid})
			if err != nil {
				return err
			}

			c.Set(identityKey, domain.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
			return next(c)
		}
	}
}
