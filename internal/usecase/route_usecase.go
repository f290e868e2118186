package usecase

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// RouteToShopInput represents a request for directions to a shop
type RouteToShopInput struct {
	StartLatitude       float64               `json:"start_latitude"`
	StartLongitude      float64               `json:"start_longitude"`
	ShopID              uuid.UUID             `json:"shop_id"`
	NavigationMode      entity.NavigationMode `json:"navigation_mode"`
	UseIndoorNavigation bool                  `json:"use_indoor_navigation"`
}

// RouteDestination describes where a route ends
type RouteDestination struct {
	ShopID     *uuid.UUID `json:"shop_id,omitempty"`
	Name       string     `json:"name"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	ShopNumber string     `json:"shop_number,omitempty"`
	FloorLevel string     `json:"floor_level,omitempty"`
}

// Route is an outdoor route from a start point to a destination
type Route struct {
	RouteID              *uuid.UUID                `json:"route_id,omitempty"`
	Destination          RouteDestination          `json:"destination"`
	DistanceMeters       float64                   `json:"distance_meters"`
	EstimatedTimeSeconds int                       `json:"estimated_time_seconds"`
	Coordinates          [][2]float64              `json:"coordinates"`
	IndoorCoordinates    []entity.IndoorPoint      `json:"indoor_coordinates,omitempty"`
	Instructions         []entity.RouteInstruction `json:"instructions,omitempty"`
	Landmarks            []string                  `json:"landmarks,omitempty"`
	IsIndoorRoute        bool                      `json:"is_indoor_route"`
	IsAccessible         bool                      `json:"is_accessible"`

	// MarketID is the market owning the destination, nil when unknown
	MarketID *uuid.UUID `json:"-"`
}

// RouteUsecase derives outdoor routes
type RouteUsecase interface {
	// RouteToShop reuses the shop's generic stored route when one exists and otherwise builds a straight line
	RouteToShop(ctx context.Context, input *RouteToShopInput) (*Route, error)
}
