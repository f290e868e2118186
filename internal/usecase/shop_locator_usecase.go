package usecase

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// Search defaults
const (
	DefaultNearbyRadiusMeters = 100.0
	MaxNearbyRadiusMeters     = 1000.0
	DefaultMarketSearchKm     = 5.0
)

// NearbyShop is a shop with its distance from the search point
type NearbyShop struct {
	Shop           *entity.Shop
	DistanceMeters float64 // rounded to centimeters
}

// ShopLocatorUsecase finds shops and markets around a point
type ShopLocatorUsecase interface {
	// FindNearby returns discoverable shops of the market within radiusMeters, nearest first
	FindNearby(ctx context.Context, lat, lon float64, marketID uuid.UUID, radiusMeters float64) ([]NearbyShop, error)

	// NearestMarket returns the closest market within maxDistanceKm and its distance in meters.
	// A nil market means none qualified.
	NearestMarket(ctx context.Context, lat, lon, maxDistanceKm float64) (*entity.Market, float64, error)
}
