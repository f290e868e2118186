package usecase

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// MarketMatch is the market found by a pin search
type MarketMatch struct {
	Market         *entity.Market
	DistanceMeters float64
}

// MarketShops lists the discoverable shops of a market.
// Distances are present only when a user position was supplied.
type MarketShops struct {
	Market    *entity.Market
	Shops     []*entity.Shop
	Distances []float64
}

// MarketNavigationInfo summarizes what navigation a market supports
type MarketNavigationInfo struct {
	Market                   *entity.Market
	IndoorNavigationEnabled  bool
	OutdoorNavigationEnabled bool
	HasBoundaryData          bool
	HasMapData               bool
	ShopsCount               int64
	GeofenceZonesCount       int
	EntranceZones            []*entity.GeofenceZone
	ParkingZones             []*entity.GeofenceZone
}

// IndoorCheck is the result of testing a point against a market
type IndoorCheck struct {
	IsIndoor    bool
	Market      *entity.Market
	CurrentZone *entity.GeofenceZone
	Latitude    float64
	Longitude   float64
}

// MarketUsecase exposes market-level navigation helpers
type MarketUsecase interface {
	// PinSearch returns the nearest market within the configured search radius
	PinSearch(ctx context.Context, lat, lon float64) (*MarketMatch, error)

	// ListShops returns the market's discoverable shops, sorted by distance when a position is given
	ListShops(ctx context.Context, marketID uuid.UUID, userLat, userLon *float64) (*MarketShops, error)

	// NavigationInfo summarizes navigation capabilities of a market
	NavigationInfo(ctx context.Context, marketID uuid.UUID) (*MarketNavigationInfo, error)

	// CheckIndoor tests whether a point is inside the market and which zone it is in
	CheckIndoor(ctx context.Context, marketID uuid.UUID, lat, lon float64) (*IndoorCheck, error)

	// GeoJSON exports the market boundary and zones as a feature collection
	GeoJSON(ctx context.Context, marketID uuid.UUID) (*geojson.FeatureCollection, error)

	// ShopQRCode renders a PNG QR code that opens navigation to the shop
	ShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error)
}
