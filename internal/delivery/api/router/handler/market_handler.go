package handler

import (
	"log/slog"
	"net/http"

	"marketnav/internal/delivery/api/response"
	"marketnav/internal/errors"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// MarketHandlerParams holds dependencies for MarketHandler, injected by Fx.
type MarketHandlerParams struct {
	fx.In

	MarketUC usecase.MarketUsecase
	Logger   *slog.Logger
}

// MarketHandler serves market level lookups
type MarketHandler struct {
	marketUC usecase.MarketUsecase
	logger   *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler
func NewMarketHandler(params MarketHandlerParams) *MarketHandler {
	return &MarketHandler{
		marketUC: params.MarketUC,
		logger:   params.Logger,
	}
}

type pinSearchResponse struct {
	*MarketResponse
	Distance float64 `json:"distance"`
}

// PinSearch handles GET /markets/pin-search?lat=&lng=
func (h *MarketHandler) PinSearch(c echo.Context) error {
	var lat, lng float64
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Both 'lat' and 'lng' parameters are required")
	}

	match, err := h.marketUC.PinSearch(c.Request().Context(), lat, lng)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, pinSearchResponse{
		MarketResponse: newMarketResponse(match.Market),
		Distance:       match.DistanceMeters,
	})
}

type marketShopsResponse struct {
	Market *MarketResponse `json:"market"`
	Shops  []*ShopResponse `json:"shops"`
	Count  int             `json:"count"`
}

// ListShops handles GET /markets/:id/shops?user_latitude=&user_longitude=
func (h *MarketHandler) ListShops(c echo.Context) error {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid market ID")
	}

	var userLat, userLon *float64
	if c.QueryParam("user_latitude") != "" && c.QueryParam("user_longitude") != "" {
		var lat, lon float64
		if err := echo.QueryParamsBinder(c).
			Float64("user_latitude", &lat).
			Float64("user_longitude", &lon).
			BindError(); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "user_latitude and user_longitude must be numbers")
		}
		userLat, userLon = &lat, &lon
	}

	result, err := h.marketUC.ListShops(c.Request().Context(), marketID, userLat, userLon)
	if err != nil {
		return response.AppError(c, err)
	}

	shops := make([]*ShopResponse, 0, len(result.Shops))
	for i, s := range result.Shops {
		var distance *float64
		if i < len(result.Distances) {
			distance = &result.Distances[i]
		}
		shops = append(shops, newShopResponse(s, distance))
	}

	return response.Success(c, http.StatusOK, marketShopsResponse{
		Market: newMarketResponse(result.Market),
		Shops:  shops,
		Count:  len(shops),
	})
}

type navigationInfoResponse struct {
	Market                   *MarketResponse `json:"market"`
	IndoorNavigationEnabled  bool            `json:"indoor_navigation_enabled"`
	OutdoorNavigationEnabled bool            `json:"outdoor_navigation_enabled"`
	HasBoundaryData          bool            `json:"has_boundary_data"`
	HasMapData               bool            `json:"has_map_data"`
	ShopsCount               int64           `json:"shops_count"`
	GeofenceZonesCount       int             `json:"geofence_zones_count"`
	EntranceZones            []*ZoneResponse `json:"entrance_zones"`
	ParkingZones             []*ZoneResponse `json:"parking_zones"`
}

// NavigationInfo handles GET /markets/:id/navigation-info
func (h *MarketHandler) NavigationInfo(c echo.Context) error {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid market ID")
	}

	info, err := h.marketUC.NavigationInfo(c.Request().Context(), marketID)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, navigationInfoResponse{
		Market:                   newMarketResponse(info.Market),
		IndoorNavigationEnabled:  info.IndoorNavigationEnabled,
		OutdoorNavigationEnabled: info.OutdoorNavigationEnabled,
		HasBoundaryData:          info.HasBoundaryData,
		HasMapData:               info.HasMapData,
		ShopsCount:               info.ShopsCount,
		GeofenceZonesCount:       info.GeofenceZonesCount,
		EntranceZones:            newZoneResponses(info.EntranceZones),
		ParkingZones:             newZoneResponses(info.ParkingZones),
	})
}

// CheckIndoorRequest represents the request body for an indoor check
type CheckIndoorRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type checkIndoorResponse struct {
	IsIndoor    bool                `json:"is_indoor"`
	MarketID    uuid.UUID           `json:"market_id"`
	MarketName  string              `json:"market_name"`
	CurrentZone *ZoneResponse       `json:"current_zone"`
	Coordinates coordinatesResponse `json:"coordinates"`
}

// CheckIndoor handles POST /markets/:id/check-indoor
func (h *MarketHandler) CheckIndoor(c echo.Context) error {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid market ID")
	}

	var req CheckIndoorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid coordinates")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	check, err := h.marketUC.CheckIndoor(c.Request().Context(), marketID, *req.Latitude, *req.Longitude)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIndoorResponse{
		IsIndoor:    check.IsIndoor,
		MarketID:    check.Market.ID,
		MarketName:  check.Market.Name,
		CurrentZone: newZoneResponse(check.CurrentZone),
		Coordinates: coordinatesResponse{Latitude: check.Latitude, Longitude: check.Longitude},
	})
}

// GeoJSON handles GET /markets/:id/geojson. The body is a bare FeatureCollection
// so map clients can load it directly.
func (h *MarketHandler) GeoJSON(c echo.Context) error {
	marketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid market ID")
	}

	fc, err := h.marketUC.GeoJSON(c.Request().Context(), marketID)
	if err != nil {
		return response.AppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal market geojson")
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}
