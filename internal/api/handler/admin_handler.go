package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/koleso24/cabinet-api/internal/core/ports"
)

// AdminHandler serves admin-only listings and client messaging. Routes using
// it are additionally guarded by the RequireAdmin middleware; the services
// re-check the role themselves.
type AdminHandler struct {
	cabinet   ports.CabinetService
	messenger ports.MessengerService
}

func NewAdminHandler(cabinet ports.CabinetService, messenger ports.MessengerService) *AdminHandler {
	return &AdminHandler{cabinet: cabinet, messenger: messenger}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id" validate:"required"`
	Text   string `json:"text" validate:"required,min=1"`
}

// Clients handles GET /api/admin/clients.
//
// @Summary      All current client records
// @Tags         admin
// @Produce      json
// @Param        X-Telegram-Init-Data  header  string  true  "Signed Telegram init data"
// @Success      200                   {array}  map[string]string
// @Failure      403                   {object}  map[string]string
// @Router       /api/admin/clients [get]
func (h *AdminHandler) Clients(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projections, err := h.cabinet.AllClients(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projections)
}

// Archive handles GET /api/admin/archive.
//
// @Summary      All archived orders
// @Tags         admin
// @Produce      json
// @Param        X-Telegram-Init-Data  header  string  true  "Signed Telegram init data"
// @Success      200                   {array}  map[string]string
// @Failure      403                   {object}  map[string]string
// @Router       /api/admin/archive [get]
func (h *AdminHandler) Archive(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projections, err := h.cabinet.AllHistory(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projections)
}

// Templates handles GET /api/admin/templates.
//
// @Summary      Message templates for the admin UI
// @Tags         admin
// @Produce      json
// @Param        X-Telegram-Init-Data  header  string  true  "Signed Telegram init data"
// @Success      200                   {array}  domain.MessageTemplate
// @Failure      403                   {object}  map[string]string
// @Router       /api/admin/templates [get]
func (h *AdminHandler) Templates(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	templates, err := h.messenger.Templates(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, templates)
}

// SendMessage handles POST /api/admin/message.
//
// @Summary      Send a text message to a client chat
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Telegram-Init-Data  header    string              true  "Signed Telegram init data"
// @Param        body                  body      sendMessageRequest  true  "Target chat id and message text"
// @Success      200                   {object}  map[string]string
// @Failure      400                   {object}  map[string]string
// @Failure      403                   {object}  map[string]string
// @Router       /api/admin/message [post]
func (h *AdminHandler) SendMessage(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.messenger.Send(c.Request().Context(), role, req.ChatID, req.Text); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"result": "sent"})
}
