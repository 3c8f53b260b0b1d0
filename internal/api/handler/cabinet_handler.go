package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/koleso24/cabinet-api/internal/core/ports"
)

// CabinetHandler serves the client-facing cabinet endpoints.
type CabinetHandler struct {
	service ports.CabinetService
}

func NewCabinetHandler(service ports.CabinetService) *CabinetHandler {
	return &CabinetHandler{service: service}
}

type registerRequest struct {
	ChatID string `json:"chat_id" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
}

// CurrentOrder handles GET /api/client.
//
// @Summary      Current storage order of the authenticated client
// @Tags         cabinet
// @Produce      json
// @Param        X-Telegram-Init-Data  header    string  true  "Signed Telegram init data"
// @Success      200                   {object}  map[string]string
// @Failure      401                   {object}  map[string]string
// @Failure      404                   {object}  map[string]string
// @Router       /api/client [get]
func (h *CabinetHandler) CurrentOrder(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projection, err := h.service.CurrentOrder(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projection)
}

// History handles GET /api/archive.
//
// @Summary      Archived storage orders of the authenticated client
// @Tags         cabinet
// @Produce      json
// @Param        X-Telegram-Init-Data  header  string  true  "Signed Telegram init data"
// @Success      200                   {array}  map[string]string
// @Failure      401                   {object}  map[string]string
// @Router       /api/archive [get]
func (h *CabinetHandler) History(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projections, err := h.service.History(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projections)
}

// Register handles POST /api/users — the bot-facing signup endpoint.
//
// @Summary      Register a new client from the bot contact flow
// @Tags         cabinet
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Chat id and phone number"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users [post]
func (h *CabinetHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Register(c.Request().Context(), req.ChatID, req.Phone); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"result": "success"})
}
