package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/burger-queen/ordering-api/internal/core/domain"
)

func newGuardContext(id *domain.Identity) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		c.Set(identityKey, *id)
	}
	return c
}

func mustNotRun(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("guarded handler must not execute")
		return nil
	}
}

func TestRequireAuth(t *testing.T) {
	if err := RequireAuth()(mustNotRun(t))(newGuardContext(nil)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous: expected ErrUnauthorized, got %v", err)
	}

	c := newGuardContext(&domain.Identity{ID: "u1", Role: domain.RoleWaiter})
	called := false
	err := RequireAuth()(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	if err != nil || !called {
		t.Fatalf("authenticated caller rejected: err=%v called=%v", err, called)
	}
}

func TestRequireAdmin(t *testing.T) {
	if err := RequireAdmin()(mustNotRun(t))(newGuardContext(nil)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous: expected ErrUnauthorized, got %v", err)
	}

	waiter := &domain.Identity{ID: "u1", Role: domain.RoleWaiter}
	if err := RequireAdmin()(mustNotRun(t))(newGuardContext(waiter)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("waiter: expected ErrForbidden, got %v", err)
	}

	admin := &domain.Identity{ID: "u2", Role: domain.RoleAdmin}
	called := false
	err := RequireAdmin()(func(c echo.Context) error {
		called = true
		return nil
	})(newGuardContext(admin))
	if err != nil || !called {
		t.Fatalf("admin rejected: err=%v called=%v", err, called)
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	run := func(id *domain.Identity, param string, next echo.HandlerFunc) error {
		c := newGuardContext(id)
		c.SetParamNames("uid")
		c.SetParamValues(param)
		return RequireSelfOrAdmin("uid")(next)(c)
	}

	if err := run(nil, "u1", mustNotRun(t)); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous: expected ErrUnauthorized, got %v", err)
	}

	self := &domain.Identity{ID: "u1", Email: "ana@example.com", Role: domain.RoleWaiter}

	// Own id and own email both pass.
	for _, param := range []string{"u1", "ana@example.com", "Ana@Example.com"} {
		called := false
		err := run(self, param, func(c echo.Context) error {
			called = true
			return nil
		})
		if err != nil || !called {
			t.Fatalf("self via %q rejected: err=%v called=%v", param, err, called)
		}
	}

	// Someone else's record is off limits for non-admins.
	for _, param := range []string{"u2", "other@example.com"} {
		if err := run(self, param, mustNotRun(t)); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("foreign %q: expected ErrForbidden, got %v", param, err)
		}
	}

	admin := &domain.Identity{ID: "u9", Role: domain.RoleAdmin}
	called := false
	err := run(admin, "u1", func(c echo.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("admin rejected: err=%v called=%v", err, called)
	}
}
