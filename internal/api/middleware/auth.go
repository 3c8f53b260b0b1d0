package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/koleso24/cabinet-api/internal/api/metrics"
	"github.com/koleso24/cabinet-api/internal/core/domain"
	"github.com/koleso24/cabinet-api/internal/telegram"
)

// InitDataHeader carries the signed Telegram init-data payload on every
// protected request.
const InitDataHeader = "X-Telegram-Init-Data"

// TelegramAuth validates the init-data header and injects the authenticated
// identity into the echo context under "user_id" and "role". Every failure
// is surfaced as the same 401; the concrete cause goes to the log only.
func TelegramAuth(botToken, adminChatID string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			initData := c.Request().Header.Get(InitDataHeader)
			if initData == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing telegram authentication")
			}

			identity, err := telegram.Validate(initData, botToken, time.Now())
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid").Inc()
				log.Warn().Err(err).Str("path", c.Path()).Msg("init-data validation failed")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing telegram authentication")
			}

			c.Set("user_id", identity.UserID)
			c.Set("role", domain.ResolveRole(identity.UserID, adminChatID))

			return next(c)
		}
	}
}
