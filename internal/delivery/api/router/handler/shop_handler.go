package handler

import (
	"log/slog"
	"net/http"

	"marketnav/internal/delivery/api/response"
	"marketnav/internal/domain/entity"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopLocatorUC usecase.ShopLocatorUsecase
	RouteUC       usecase.RouteUsecase
	MarketUC      usecase.MarketUsecase
	Logger        *slog.Logger
}

// ShopHandler serves shop discovery and shop routing
type ShopHandler struct {
	shopLocatorUC usecase.ShopLocatorUsecase
	routeUC       usecase.RouteUsecase
	marketUC      usecase.MarketUsecase
	logger        *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopLocatorUC: params.ShopLocatorUC,
		routeUC:       params.RouteUC,
		marketUC:      params.MarketUC,
		logger:        params.Logger,
	}
}

// NearbyShopsRequest represents the request body for a nearby shop search
type NearbyShopsRequest struct {
	Latitude     *float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    *float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	MarketID     uuid.UUID `json:"market_id" validate:"required"`
	RadiusMeters *float64  `json:"radius_meters" validate:"omitempty,gte=1,lte=1000"`
}

type nearbyShopResponse struct {
	ShopID         uuid.UUID `json:"shop_id"`
	DistanceMeters float64   `json:"distance_meters"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Name           string    `json:"name"`
	ShopNumber     string    `json:"shop_number"`
	FloorLevel     string    `json:"floor_level"`
}

type nearbyShopsResponse struct {
	Shops              []nearbyShopResponse `json:"shops"`
	Count              int                  `json:"count"`
	SearchRadiusMeters float64              `json:"search_radius_meters"`
	SearchLocation     coordinatesResponse  `json:"search_location"`
}

// FindNearby handles POST /shops/nearby
func (h *ShopHandler) FindNearby(c echo.Context) error {
	var req NearbyShopsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid nearby shop search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	radius := usecase.DefaultNearbyRadiusMeters
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}

	nearby, err := h.shopLocatorUC.FindNearby(c.Request().Context(), *req.Latitude, *req.Longitude, req.MarketID, radius)
	if err != nil {
		return response.AppError(c, err)
	}

	shops := make([]nearbyShopResponse, 0, len(nearby))
	for _, n := range nearby {
		shops = append(shops, nearbyShopResponse{
			ShopID:         n.Shop.ID,
			DistanceMeters: n.DistanceMeters,
			Latitude:       n.Shop.Latitude,
			Longitude:      n.Shop.Longitude,
			Name:           n.Shop.Name,
			ShopNumber:     n.Shop.ShopNumber,
			FloorLevel:     n.Shop.FloorLevel,
		})
	}

	return response.Success(c, http.StatusOK, nearbyShopsResponse{
		Shops:              shops,
		Count:              len(shops),
		SearchRadiusMeters: radius,
		SearchLocation:     coordinatesResponse{Latitude: *req.Latitude, Longitude: *req.Longitude},
	})
}

// RouteToShopRequest represents the request body for a route to a shop
type RouteToShopRequest struct {
	StartLatitude       *float64              `json:"start_latitude" validate:"required,gte=-90,lte=90"`
	StartLongitude      *float64              `json:"start_longitude" validate:"required,gte=-180,lte=180"`
	NavigationMode      entity.NavigationMode `json:"navigation_mode" validate:"omitempty,navigation_mode"`
	UseIndoorNavigation bool                  `json:"use_indoor_navigation"`
}

// RouteToShop handles POST /shops/:id/route
func (h *ShopHandler) RouteToShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req RouteToShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	mode := req.NavigationMode
	if mode == "" {
		mode = entity.NavigationModeWalking
	}

	route, err := h.routeUC.RouteToShop(c.Request().Context(), &usecase.RouteToShopInput{
		StartLatitude:       *req.StartLatitude,
		StartLongitude:      *req.StartLongitude,
		ShopID:              shopID,
		NavigationMode:      mode,
		UseIndoorNavigation: req.UseIndoorNavigation,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}

// QRCode handles GET /shops/:id/qrcode and returns a PNG
func (h *ShopHandler) QRCode(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	png, err := h.marketUC.ShopQRCode(c.Request().Context(), shopID)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
