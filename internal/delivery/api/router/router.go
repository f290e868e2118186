// Package router wires the API handlers to their routes.
package router

import (
	"marketnav/internal/delivery/api/middleware"
	"marketnav/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler       *handler.ShopHandler
	NavigationHandler *handler.NavigationHandler
	GeofenceHandler   *handler.GeofenceHandler
	MarketHandler     *handler.MarketHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler       *handler.ShopHandler
	navigationHandler *handler.NavigationHandler
	geofenceHandler   *handler.GeofenceHandler
	marketHandler     *handler.MarketHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:       params.ShopHandler,
		navigationHandler: params.NavigationHandler,
		geofenceHandler:   params.GeofenceHandler,
		marketHandler:     params.MarketHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// every API route needs a bearer token
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.POST("/nearby", r.shopHandler.FindNearby)
		shopsGroup.POST("/:id/route", r.shopHandler.RouteToShop)
		shopsGroup.GET("/:id/qrcode", r.shopHandler.QRCode)
	}

	navigationGroup := apiV1.Group("/navigation")
	{
		navigationGroup.POST("/start", r.navigationHandler.Start)
		navigationGroup.POST("/location", r.navigationHandler.ReportLocation)
		navigationGroup.GET("/locations", r.navigationHandler.RecentLocations)
		navigationGroup.POST("/status", r.navigationHandler.UpdateStatus)
		navigationGroup.GET("/active", r.navigationHandler.ActiveSession)
		navigationGroup.GET("/sessions/:id", r.navigationHandler.GetSession)
		navigationGroup.POST("/indoor-route", r.navigationHandler.IndoorRoute)
		navigationGroup.POST("/external-route", r.navigationHandler.ExternalRoute)
	}

	geofenceGroup := apiV1.Group("/geofence")
	{
		geofenceGroup.GET("", r.geofenceHandler.ListZones)
		geofenceGroup.POST("/detect-zone", r.geofenceHandler.DetectZone)
	}

	marketsGroup := apiV1.Group("/markets")
	{
		marketsGroup.GET("/pin-search", r.marketHandler.PinSearch)
		marketsGroup.GET("/:id/shops", r.marketHandler.ListShops)
		marketsGroup.GET("/:id/navigation-info", r.marketHandler.NavigationInfo)
		marketsGroup.POST("/:id/check-indoor", r.marketHandler.CheckIndoor)
		marketsGroup.GET("/:id/geojson", r.marketHandler.GeoJSON)
	}
}
