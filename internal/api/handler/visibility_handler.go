package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/koleso24/cabinet-api/internal/core/domain"
	"github.com/koleso24/cabinet-api/internal/core/ports"
)

// VisibilityHandler serves the field-visibility settings endpoints.
type VisibilityHandler struct {
	service ports.VisibilityService
}

func NewVisibilityHandler(service ports.VisibilityService) *VisibilityHandler {
	return &VisibilityHandler{service: service}
}

// visibilityRequest mirrors domain.FieldVisibility with pointer booleans so a
// missing key is distinguishable from an explicit false. Together with
// DisallowUnknownFields this enforces exactly the closed key set.
type visibilityRequest struct {
	Name            *bool `json:"name" validate:"required"`
	Phone           *bool `json:"phone" validate:"required"`
	CarNumber       *bool `json:"carNumber" validate:"required"`
	OrderQr         *bool `json:"orderQr" validate:"required"`
	PricePerMonth   *bool `json:"pricePerMonth" validate:"required"`
	TireCount       *bool `json:"tireCount" validate:"required"`
	HasRims         *bool `json:"hasRims" validate:"required"`
	StartDate       *bool `json:"startDate" validate:"required"`
	Duration        *bool `json:"duration" validate:"required"`
	Reminder        *bool `json:"reminder" validate:"required"`
	EndDate         *bool `json:"endDate" validate:"required"`
	StorageLocation *bool `json:"storageLocation" validate:"required"`
	Cell            *bool `json:"cell" validate:"required"`
	TotalAmount     *bool `json:"totalAmount" validate:"required"`
	Debt            *bool `json:"debt" validate:"required"`
	Contract        *bool `json:"contract" validate:"required"`
	ClientAddress   *bool `json:"clientAddress" validate:"required"`
	DealStatus      *bool `json:"dealStatus" validate:"required"`
	TrafficSource   *bool `json:"trafficSource" validate:"required"`
	DotCode         *bool `json:"dotCode" validate:"required"`
}

func (r visibilityRequest) toDomain() domain.FieldVisibility {
	return domain.FieldVisibility{
		Name:            *r.Name,
		Phone:           *r.Phone,
		CarNumber:       *r.CarNumber,
		OrderQr:         *r.OrderQr,
		PricePerMonth:   *r.PricePerMonth,
		TireCount:       *r.TireCount,
		HasRims:         *r.HasRims,
		StartDate:       *r.StartDate,
		Duration:        *r.Duration,
		Reminder:        *r.Reminder,
		EndDate:         *r.EndDate,
		StorageLocation: *r.StorageLocation,
		Cell:            *r.Cell,
		TotalAmount:     *r.TotalAmount,
		Debt:            *r.Debt,
		Contract:        *r.Contract,
		ClientAddress:   *r.ClientAddress,
		DealStatus:      *r.DealStatus,
		TrafficSource:   *r.TrafficSource,
		DotCode:         *r.DotCode,
	}
}

// Get handles GET /api/field-visibility. Deliberately unauthenticated:
// clients need the settings to render their own filtered view.
//
// @Summary      Current field visibility settings
// @Tags         visibility
// @Produce      json
// @Success      200  {object}  domain.FieldVisibility
// @Router       /api/field-visibility [get]
func (h *VisibilityHandler) Get(c echo.Context) error {
	settings, err := h.service.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles POST /api/field-visibility. Admin only; the payload must be
// the complete settings object and is applied all-or-nothing.
//
// @Summary      Replace field visibility settings
// @Tags         visibility
// @Accept       json
// @Produce      json
// @Param        X-Telegram-Init-Data  header    string             true  "Signed Telegram init data"
// @Param        body                  body      visibilityRequest  true  "Complete settings object"
// @Success      200                   {object}  domain.FieldVisibility
// @Failure      400                   {object}  map[string]string
// @Failure      401                   {object}  map[string]string
// @Failure      403                   {object}  map[string]string
// @Router       /api/field-visibility [post]
func (h *VisibilityHandler) Update(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req visibilityRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid field visibility payload: "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accepted, err := h.service.Update(c.Request().Context(), role, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accepted)
}
