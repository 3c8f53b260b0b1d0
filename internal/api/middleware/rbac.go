package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/koleso24/cabinet-api/internal/core/domain"
)

// RequireAdmin rejects authenticated requests whose resolved role is not
// admin. Must run after TelegramAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
