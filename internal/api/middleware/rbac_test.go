package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

func TestRequireAdmin_Allowed(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", domain.RoleAdmin)

	called := false
	handler := RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called for admin")
	}
}

func TestRequireAdmin_Forbidden(t *testing.T) {
	e := echo.New()

	for name, role := range map[string]any{
		"client role": domain.RoleClient,
		"no role":     nil,
	} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}

		handler := RequireAdmin()(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %v", name, err)
		}
	}
}
