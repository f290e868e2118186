package impl

import (
	"cmp"
	"context"
	"math"
	"slices"

	"marketnav/config"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/domain/service"
	"marketnav/internal/errors"
	"marketnav/internal/geo"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type marketService struct {
	marketRepo  repository.MarketRepository
	shopRepo    repository.ShopRepository
	geofence    usecase.GeofenceUsecase
	shopLocator usecase.ShopLocatorUsecase
	qrService   service.QRCodeService
	settings    navigationSettings
}

// NewMarketService creates a new market service instance
func NewMarketService(
	marketRepo repository.MarketRepository,
	shopRepo repository.ShopRepository,
	geofence usecase.GeofenceUsecase,
	shopLocator usecase.ShopLocatorUsecase,
	qrService service.QRCodeService,
	cfg *config.Config,
) usecase.MarketUsecase {
	return &marketService{
		marketRepo:  marketRepo,
		shopRepo:    shopRepo,
		geofence:    geofence,
		shopLocator: shopLocator,
		qrService:   qrService,
		settings:    newNavigationSettings(cfg),
	}
}

func (s *marketService) findMarket(ctx context.Context, marketID uuid.UUID) (*entity.Market, error) {
	market, err := s.marketRepo.FindMarketByID(ctx, marketID)
	if err != nil {
		if errors.Is(err, repository.ErrMarketNotFound) {
			return nil, domainerrors.ErrMarketNotFound
		}

		return nil, errors.Wrap(err, "failed to find market by ID")
	}

	return market, nil
}

// PinSearch returns the nearest market within the search radius, distance rounded to whole meters
func (s *marketService) PinSearch(ctx context.Context, lat, lon float64) (*usecase.MarketMatch, error) {
	market, distance, err := s.shopLocator.NearestMarket(ctx, lat, lon, s.settings.marketSearchRadiusKm)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, domainerrors.ErrNoMarketNearby
	}

	return &usecase.MarketMatch{
		Market:         market,
		DistanceMeters: math.Round(distance),
	}, nil
}

type shopWithDistance struct {
	shop     *entity.Shop
	distance float64
}

// ListShops returns the discoverable shops of a market; with a user position they are nearest first
func (s *marketService) ListShops(ctx context.Context, marketID uuid.UUID, userLat, userLon *float64) (*usecase.MarketShops, error) {
	market, err := s.findMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	shops, err := s.shopRepo.FindDiscoverableShopsByMarket(ctx, marketID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops by market")
	}

	result := &usecase.MarketShops{Market: market, Shops: shops}
	if userLat == nil || userLon == nil {
		return result, nil
	}

	ranked := make([]shopWithDistance, 0, len(shops))
	for _, shop := range shops {
		ranked = append(ranked, shopWithDistance{
			shop:     shop,
			distance: geo.Distance(*userLat, *userLon, shop.Latitude, shop.Longitude),
		})
	}
	slices.SortStableFunc(ranked, func(a, b shopWithDistance) int {
		return cmp.Compare(a.distance, b.distance)
	})

	result.Shops = make([]*entity.Shop, 0, len(ranked))
	result.Distances = make([]float64, 0, len(ranked))
	for _, r := range ranked {
		result.Shops = append(result.Shops, r.shop)
		result.Distances = append(result.Distances, geo.Round(r.distance, 2))
	}

	return result, nil
}

// NavigationInfo summarizes the navigation capabilities of a market
func (s *marketService) NavigationInfo(ctx context.Context, marketID uuid.UUID) (*usecase.MarketNavigationInfo, error) {
	market, err := s.findMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	shopsCount, err := s.shopRepo.CountActiveShopsByMarket(ctx, marketID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count shops by market")
	}

	zones, err := s.geofence.ListZones(ctx, marketID)
	if err != nil {
		return nil, err
	}

	info := &usecase.MarketNavigationInfo{
		Market:                   market,
		IndoorNavigationEnabled:  market.IndoorMapEnabled,
		OutdoorNavigationEnabled: market.OutdoorNavigationEnabled,
		HasBoundaryData:          market.HasBoundary(),
		HasMapData:               market.HasMapData,
		ShopsCount:               shopsCount,
		GeofenceZonesCount:       len(zones),
		EntranceZones:            []*entity.GeofenceZone{},
		ParkingZones:             []*entity.GeofenceZone{},
	}
	for _, zone := range zones {
		switch zone.ZoneType {
		case entity.ZoneTypeEntrance:
			info.EntranceZones = append(info.EntranceZones, zone)
		case entity.ZoneTypeParking:
			info.ParkingZones = append(info.ParkingZones, zone)
		}
	}

	return info, nil
}

// CheckIndoor tests a point against the market boundary and its zones
func (s *marketService) CheckIndoor(ctx context.Context, marketID uuid.UUID, lat, lon float64) (*usecase.IndoorCheck, error) {
	market, err := s.findMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	zone, err := s.geofence.DetectZone(ctx, lat, lon, marketID)
	if err != nil {
		return nil, err
	}

	return &usecase.IndoorCheck{
		IsIndoor:    s.geofence.IsIndoor(lat, lon, market),
		Market:      market,
		CurrentZone: zone,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}

// GeoJSON exports the market as a point, its boundary as a polygon and each zone as a point
func (s *marketService) GeoJSON(ctx context.Context, marketID uuid.UUID) (*geojson.FeatureCollection, error) {
	market, err := s.findMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	zones, err := s.geofence.ListZones(ctx, marketID)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()

	center := geojson.NewFeature(orb.Point{market.Longitude, market.Latitude})
	center.ID = market.ID.String()
	center.Properties["kind"] = "market"
	center.Properties["name"] = market.Name
	center.Properties["indoor_map_enabled"] = market.IndoorMapEnabled
	fc.Append(center)

	if market.HasBoundary() {
		ring := market.Boundary.Clone()
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		boundary := geojson.NewFeature(orb.Polygon{ring})
		boundary.Properties["kind"] = "boundary"
		boundary.Properties["market_id"] = market.ID.String()
		fc.Append(boundary)
	}

	for _, zone := range zones {
		feature := geojson.NewFeature(orb.Point{zone.CenterLongitude, zone.CenterLatitude})
		feature.ID = zone.ID.String()
		feature.Properties["kind"] = "zone"
		feature.Properties["name"] = zone.Name
		feature.Properties["zone_type"] = string(zone.ZoneType)
		feature.Properties["radius_meters"] = zone.RadiusMeters
		feature.Properties["is_indoor"] = zone.IsIndoor
		feature.Properties["floor_level"] = zone.FloorLevel
		fc.Append(feature)
	}

	return fc, nil
}

// ShopQRCode renders the navigation deep link of a shop as a PNG
func (s *marketService) ShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	png, err := s.qrService.GenerateShopNavigationQR(shop.MarketID, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}
