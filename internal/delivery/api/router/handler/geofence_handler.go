package handler

import (
	"log/slog"
	"net/http"

	"marketnav/internal/delivery/api/response"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler serves zone lookups
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// DetectZoneRequest represents the request body for zone detection
type DetectZoneRequest struct {
	Latitude  *float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	MarketID  uuid.UUID `json:"market_id" validate:"required"`
}

type detectZoneResponse struct {
	Zone   *ZoneResponse `json:"zone"`
	InZone bool          `json:"in_zone"`
}

// DetectZone handles POST /geofence/detect-zone
func (h *GeofenceHandler) DetectZone(c echo.Context) error {
	var req DetectZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid zone detection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	zone, err := h.geofenceUC.DetectZone(c.Request().Context(), *req.Latitude, *req.Longitude, req.MarketID)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, detectZoneResponse{
		Zone:   newZoneResponse(zone),
		InZone: zone != nil,
	})
}

// ListZones handles GET /geofence?market=
func (h *GeofenceHandler) ListZones(c echo.Context) error {
	marketID, err := uuid.Parse(c.QueryParam("market"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "market query parameter must be a market ID")
	}

	zones, err := h.geofenceUC.ListZones(c.Request().Context(), marketID)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newZoneResponses(zones))
}
