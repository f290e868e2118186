package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketnav/internal/delivery/api/middleware"
	"marketnav/internal/delivery/api/response"
	"marketnav/internal/domain/entity"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC      usecase.NavigationUsecase
	LocationTrackerUC usecase.LocationTrackerUsecase
	IndoorRouteUC     usecase.IndoorRouteUsecase
	ExternalRouteUC   usecase.ExternalRouteUsecase
	Logger            *slog.Logger
}

// NavigationHandler serves navigation sessions, location reports and routing helpers
type NavigationHandler struct {
	navigationUC      usecase.NavigationUsecase
	locationTrackerUC usecase.LocationTrackerUsecase
	indoorRouteUC     usecase.IndoorRouteUsecase
	externalRouteUC   usecase.ExternalRouteUsecase
	logger            *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC:      params.NavigationUC,
		locationTrackerUC: params.LocationTrackerUC,
		indoorRouteUC:     params.IndoorRouteUC,
		externalRouteUC:   params.ExternalRouteUC,
		logger:            params.Logger,
	}
}

// StartNavigationRequest represents the request body for starting navigation.
// Exactly one of destination_shop_id or the destination coordinates must be set.
type StartNavigationRequest struct {
	StartLatitude        *float64              `json:"start_latitude" validate:"required,gte=-90,lte=90"`
	StartLongitude       *float64              `json:"start_longitude" validate:"required,gte=-180,lte=180"`
	DestinationShopID    *uuid.UUID            `json:"destination_shop_id"`
	DestinationLatitude  *float64              `json:"destination_latitude" validate:"omitempty,gte=-90,lte=90"`
	DestinationLongitude *float64              `json:"destination_longitude" validate:"omitempty,gte=-180,lte=180"`
	NavigationMode       entity.NavigationMode `json:"navigation_mode" validate:"omitempty,navigation_mode"`
	UseIndoorNavigation  bool                  `json:"use_indoor_navigation"`
}

type startNavigationResponse struct {
	SessionID           uuid.UUID             `json:"session_id"`
	Route               *usecase.Route        `json:"route"`
	NavigationMode      entity.NavigationMode `json:"navigation_mode"`
	UseIndoorNavigation bool                  `json:"use_indoor_navigation"`
	StartedAt           time.Time             `json:"started_at"`
}

// Start handles POST /navigation/start
func (h *NavigationHandler) Start(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StartNavigationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid navigation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	started, err := h.navigationUC.Start(c.Request().Context(), userID, &usecase.StartNavigationInput{
		StartLatitude:        *req.StartLatitude,
		StartLongitude:       *req.StartLongitude,
		DestinationShopID:    req.DestinationShopID,
		DestinationLatitude:  req.DestinationLatitude,
		DestinationLongitude: req.DestinationLongitude,
		NavigationMode:       req.NavigationMode,
		UseIndoorNavigation:  req.UseIndoorNavigation,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusCreated, startNavigationResponse{
		SessionID:           started.Session.ID,
		Route:               started.Route,
		NavigationMode:      started.Session.NavigationMode,
		UseIndoorNavigation: started.Session.UseIndoorNavigation,
		StartedAt:           started.Session.StartedAt,
	})
}

// ReportLocationRequest represents the request body for a location update
type ReportLocationRequest struct {
	Latitude         *float64   `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude        *float64   `json:"longitude" validate:"required,gte=-180,lte=180"`
	MarketID         *uuid.UUID `json:"market_id"`
	AutoDetectMarket *bool      `json:"auto_detect_market"`
	Altitude         *float64   `json:"altitude"`
	AccuracyMeters   *float64   `json:"accuracy_meters" validate:"omitempty,gte=0"`
	IndoorX          *float64   `json:"indoor_x"`
	IndoorY          *float64   `json:"indoor_y"`
	FloorLevel       *int       `json:"floor_level"`
	BatteryLevel     *int       `json:"battery_level" validate:"omitempty,gte=0,lte=100"`
	SignalStrength   *int       `json:"signal_strength" validate:"omitempty,gte=0,lte=100"`
}

// ReportLocation handles POST /navigation/location
func (h *NavigationHandler) ReportLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	report, err := h.locationTrackerUC.ReportLocation(c.Request().Context(), userID, &usecase.ReportLocationInput{
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		MarketID:         req.MarketID,
		AutoDetectMarket: req.AutoDetectMarket,
		Altitude:         req.Altitude,
		AccuracyMeters:   req.AccuracyMeters,
		IndoorX:          req.IndoorX,
		IndoorY:          req.IndoorY,
		FloorLevel:       req.FloorLevel,
		BatteryLevel:     req.BatteryLevel,
		SignalStrength:   req.SignalStrength,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	resp := newLocationResponse(report.Location)
	resp.MarketName = report.MarketName
	resp.CurrentZoneName = report.CurrentZoneName
	resp.CurrentShopName = report.CurrentShopName

	return response.Success(c, http.StatusOK, resp)
}

// RecentLocations handles GET /navigation/locations?limit=
func (h *NavigationHandler) RecentLocations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.BindingError(c, "limit must be an integer")
	}

	locations, err := h.locationTrackerUC.RecentLocations(c.Request().Context(), userID, limit)
	if err != nil {
		return response.AppError(c, err)
	}

	result := make([]*LocationResponse, 0, len(locations))
	for _, l := range locations {
		result = append(result, newLocationResponse(l))
	}

	return response.Success(c, http.StatusOK, result)
}

// UpdateStatusRequest represents the request body for a navigation progress update
type UpdateStatusRequest struct {
	SessionID        uuid.UUID               `json:"session_id" validate:"required"`
	CurrentLatitude  *float64                `json:"current_latitude" validate:"required,gte=-90,lte=90"`
	CurrentLongitude *float64                `json:"current_longitude" validate:"required,gte=-180,lte=180"`
	CurrentStepIndex int                     `json:"current_step_index" validate:"gte=0"`
	Status           entity.NavigationStatus `json:"status" validate:"omitempty,navigation_status"`
}

// UpdateStatus handles POST /navigation/status
func (h *NavigationHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid navigation status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	session, err := h.navigationUC.UpdateStatus(c.Request().Context(), userID, &usecase.UpdateNavigationStatusInput{
		SessionID:        req.SessionID,
		CurrentLatitude:  *req.CurrentLatitude,
		CurrentLongitude: *req.CurrentLongitude,
		CurrentStepIndex: req.CurrentStepIndex,
		Status:           req.Status,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// ActiveSession handles GET /navigation/active
func (h *NavigationHandler) ActiveSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	session, err := h.navigationUC.ActiveSession(c.Request().Context(), userID)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// GetSession handles GET /navigation/sessions/:id
func (h *NavigationHandler) GetSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	session, err := h.navigationUC.GetSession(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// IndoorRouteRequest represents the request body for an indoor route; every field is required
type IndoorRouteRequest struct {
	StartX   *float64  `json:"start_x" validate:"required"`
	StartY   *float64  `json:"start_y" validate:"required"`
	EndX     *float64  `json:"end_x" validate:"required"`
	EndY     *float64  `json:"end_y" validate:"required"`
	Floor    *int      `json:"floor" validate:"required"`
	MarketID uuid.UUID `json:"market_id" validate:"required"`
}

// IndoorRoute handles POST /navigation/indoor-route
func (h *NavigationHandler) IndoorRoute(c echo.Context) error {
	var req IndoorRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid indoor route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	route, err := h.indoorRouteUC.IndoorRoute(c.Request().Context(), &usecase.IndoorRouteInput{
		StartX:   *req.StartX,
		StartY:   *req.StartY,
		EndX:     *req.EndX,
		EndY:     *req.EndY,
		Floor:    *req.Floor,
		MarketID: req.MarketID,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}

// ExternalRouteRequest represents the request body for third-party directions
type ExternalRouteRequest struct {
	Provider       string                `json:"provider" validate:"omitempty,oneof=google mapbox"`
	StartLatitude  *float64              `json:"start_latitude" validate:"required,gte=-90,lte=90"`
	StartLongitude *float64              `json:"start_longitude" validate:"required,gte=-180,lte=180"`
	EndLatitude    *float64              `json:"end_latitude" validate:"required,gte=-90,lte=90"`
	EndLongitude   *float64              `json:"end_longitude" validate:"required,gte=-180,lte=180"`
	NavigationMode entity.NavigationMode `json:"navigation_mode" validate:"omitempty,navigation_mode"`
}

// ExternalRoute handles POST /navigation/external-route
func (h *NavigationHandler) ExternalRoute(c echo.Context) error {
	var req ExternalRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid external route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	route, err := h.externalRouteUC.Directions(c.Request().Context(), &usecase.ExternalRouteInput{
		Provider:       req.Provider,
		StartLatitude:  *req.StartLatitude,
		StartLongitude: *req.StartLongitude,
		EndLatitude:    *req.EndLatitude,
		EndLongitude:   *req.EndLongitude,
		NavigationMode: req.NavigationMode,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}
