package impl

import (
	"context"
	"testing"

	"marketnav/config"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/geo"
	mockRepo "marketnav/internal/mocks/repository"
	mockSvc "marketnav/internal/mocks/service"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marketServiceFixtures struct {
	marketRepo *mockRepo.MockMarketRepository
	shopRepo   *mockRepo.MockShopRepository
	zoneRepo   *mockRepo.MockGeofenceZoneRepository
	qrService  *mockSvc.MockQRCodeService
}

func createTestMarketService(t *testing.T) (usecase.MarketUsecase, *marketServiceFixtures) {
	fx := &marketServiceFixtures{
		marketRepo: mockRepo.NewMockMarketRepository(t),
		shopRepo:   mockRepo.NewMockShopRepository(t),
		zoneRepo:   mockRepo.NewMockGeofenceZoneRepository(t),
		qrService:  mockSvc.NewMockQRCodeService(t),
	}

	cfg := &config.Config{}
	svc := NewMarketService(
		fx.marketRepo,
		fx.shopRepo,
		NewGeofenceService(fx.zoneRepo),
		NewShopLocatorService(fx.shopRepo, fx.marketRepo, cfg),
		fx.qrService,
		cfg,
	)

	return svc, fx
}

func newTestMarket() *entity.Market {
	return &entity.Market{
		ID:                       uuid.New(),
		Name:                     "Or Tor Kor",
		Latitude:                 testMarketLat,
		Longitude:                testMarketLon,
		Boundary:                 testBoundary(),
		IndoorMapEnabled:         true,
		OutdoorNavigationEnabled: true,
	}
}

func TestMarketService_PinSearch(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()

	fx.marketRepo.EXPECT().ListMarkets(ctx).Return([]*entity.Market{market}, nil)

	match, err := svc.PinSearch(ctx, testMarketLat+0.001, testMarketLon)
	require.NoError(t, err)
	assert.Equal(t, market, match.Market)
	assert.Equal(t, 111.0, match.DistanceMeters)
}

func TestMarketService_PinSearch_NothingNearby(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()

	fx.marketRepo.EXPECT().ListMarkets(ctx).Return([]*entity.Market{market}, nil)

	match, err := svc.PinSearch(ctx, testMarketLat+0.1, testMarketLon)
	assert.ErrorIs(t, err, domainerrors.ErrNoMarketNearby)
	assert.Nil(t, match)
}

func TestMarketService_ListShops(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()
	far := newTestShop(market.ID, "Far Noodles", "A-01", testMarketLat+0.002, testMarketLon)
	near := newTestShop(market.ID, "Thai Tea", "A-02", testMarketLat+0.0002, testMarketLon)

	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)
	fx.shopRepo.EXPECT().FindDiscoverableShopsByMarket(ctx, market.ID).Return([]*entity.Shop{far, near}, nil)

	result, err := svc.ListShops(ctx, market.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Shop{far, near}, result.Shops)
	assert.Nil(t, result.Distances)
}

func TestMarketService_ListShops_SortedByDistance(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()
	far := newTestShop(market.ID, "Far Noodles", "A-01", testMarketLat+0.002, testMarketLon)
	near := newTestShop(market.ID, "Thai Tea", "A-02", testMarketLat+0.0002, testMarketLon)
	lat := testMarketLat
	lon := testMarketLon

	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)
	fx.shopRepo.EXPECT().FindDiscoverableShopsByMarket(ctx, market.ID).Return([]*entity.Shop{far, near}, nil)

	result, err := svc.ListShops(ctx, market.ID, &lat, &lon)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Shop{near, far}, result.Shops)
	require.Len(t, result.Distances, 2)
	assert.Equal(t, geo.Round(geo.Distance(lat, lon, near.Latitude, near.Longitude), 2), result.Distances[0])
}

func TestMarketService_ListShops_MarketNotFound(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	marketID := uuid.New()

	fx.marketRepo.EXPECT().FindMarketByID(ctx, marketID).Return(nil, repository.ErrMarketNotFound)

	result, err := svc.ListShops(ctx, marketID, nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrMarketNotFound)
	assert.Nil(t, result)
}

func TestMarketService_NavigationInfo(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()
	entrance := newTestZone(market.ID, "Gate A", entity.ZoneTypeEntrance, testMarketLat, testMarketLon, 10)
	parking := newTestZone(market.ID, "Car Park", entity.ZoneTypeParking, testMarketLat, testMarketLon, 40)
	section := newTestZone(market.ID, "Fruit", entity.ZoneTypeSection, testMarketLat, testMarketLon, 15)

	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)
	fx.shopRepo.EXPECT().CountActiveShopsByMarket(ctx, market.ID).Return(int64(42), nil)
	fx.zoneRepo.EXPECT().FindZonesByMarket(ctx, market.ID).Return([]*entity.GeofenceZone{entrance, parking, section}, nil)

	info, err := svc.NavigationInfo(ctx, market.ID)
	require.NoError(t, err)
	assert.True(t, info.IndoorNavigationEnabled)
	assert.True(t, info.OutdoorNavigationEnabled)
	assert.True(t, info.HasBoundaryData)
	assert.False(t, info.HasMapData)
	assert.Equal(t, int64(42), info.ShopsCount)
	assert.Equal(t, 3, info.GeofenceZonesCount)
	assert.Equal(t, []*entity.GeofenceZone{entrance}, info.EntranceZones)
	assert.Equal(t, []*entity.GeofenceZone{parking}, info.ParkingZones)
}

func TestMarketService_CheckIndoor(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()
	zone := newTestZone(market.ID, "Food Court", entity.ZoneTypeFoodCourt, testMarketLat, testMarketLon, 25)

	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)
	fx.zoneRepo.EXPECT().FindZonesByMarket(ctx, market.ID).Return([]*entity.GeofenceZone{zone}, nil)

	check, err := svc.CheckIndoor(ctx, market.ID, testMarketLat, testMarketLon)
	require.NoError(t, err)
	assert.True(t, check.IsIndoor)
	assert.Equal(t, market, check.Market)
	assert.Equal(t, zone, check.CurrentZone)
	assert.Equal(t, testMarketLat, check.Latitude)
}

func TestMarketService_GeoJSON(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()
	zone := newTestZone(market.ID, "Gate A", entity.ZoneTypeEntrance, testMarketLat, testMarketLon+0.001, 10)

	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)
	fx.zoneRepo.EXPECT().FindZonesByMarket(ctx, market.ID).Return([]*entity.GeofenceZone{zone}, nil)

	fc, err := svc.GeoJSON(ctx, market.ID)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	assert.Equal(t, orb.Point{testMarketLon, testMarketLat}, fc.Features[0].Geometry)
	assert.Equal(t, "market", fc.Features[0].Properties["kind"])

	polygon, ok := fc.Features[1].Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, polygon, 1)
	assert.True(t, polygon[0].Closed())
	assert.Len(t, polygon[0], len(market.Boundary)+1)
	assert.Len(t, market.Boundary, 4)

	assert.Equal(t, orb.Point{testMarketLon + 0.001, testMarketLat}, fc.Features[2].Geometry)
	assert.Equal(t, "entrance", fc.Features[2].Properties["zone_type"])
	assert.Equal(t, zone.ID.String(), fc.Features[2].ID)

	raw, err := fc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
}

func TestMarketService_GeoJSON_NoBoundary(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	market := newTestMarket()
	market.Boundary = nil

	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)
	fx.zoneRepo.EXPECT().FindZonesByMarket(ctx, market.ID).Return(nil, nil)

	fc, err := svc.GeoJSON(ctx, market.ID)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 1)
}

func TestMarketService_ShopQRCode(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	shop := newTestShop(uuid.New(), "Thai Tea", "A-03", testMarketLat, testMarketLon)
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.qrService.EXPECT().GenerateShopNavigationQR(shop.MarketID, shop.ID).Return(png, nil)

	result, err := svc.ShopQRCode(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestMarketService_ShopQRCode_ShopNotFound(t *testing.T) {
	svc, fx := createTestMarketService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().FindShopByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	result, err := svc.ShopQRCode(ctx, shopID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	assert.Nil(t, result)
}
