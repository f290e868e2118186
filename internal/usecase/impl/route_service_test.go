package impl

import (
	"context"
	"errors"
	"testing"

	"marketnav/config"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/geo"
	mockRepo "marketnav/internal/mocks/repository"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeServiceFixtures struct {
	shopRepo   *mockRepo.MockShopRepository
	marketRepo *mockRepo.MockMarketRepository
	routeRepo  *mockRepo.MockNavigationRouteRepository
	zoneRepo   *mockRepo.MockGeofenceZoneRepository
}

func createTestRouteService(t *testing.T) (usecase.RouteUsecase, *routeServiceFixtures) {
	fx := &routeServiceFixtures{
		shopRepo:   mockRepo.NewMockShopRepository(t),
		marketRepo: mockRepo.NewMockMarketRepository(t),
		routeRepo:  mockRepo.NewMockNavigationRouteRepository(t),
		zoneRepo:   mockRepo.NewMockGeofenceZoneRepository(t),
	}

	service := NewRouteService(fx.shopRepo, fx.marketRepo, fx.routeRepo, NewGeofenceService(fx.zoneRepo), &config.Config{})

	return service, fx
}

func TestRouteService_RouteToShop_StraightLine(t *testing.T) {
	service, fx := createTestRouteService(t)

	ctx := context.Background()
	market := &entity.Market{ID: uuid.New(), Name: "Or Tor Kor", Boundary: testBoundary()}
	shop := newTestShop(market.ID, "Thai Tea", "A-03", testMarketLat+0.001, testMarketLon)
	input := &usecase.RouteToShopInput{
		StartLatitude:  testMarketLat,
		StartLongitude: testMarketLon,
		ShopID:         shop.ID,
		NavigationMode: entity.NavigationModeWalking,
	}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.routeRepo.EXPECT().FindGenericRouteForShop(ctx, shop.ID).Return(nil, repository.ErrRouteNotFound)
	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)

	route, err := service.RouteToShop(ctx, input)
	require.NoError(t, err)

	distance := geo.Distance(testMarketLat, testMarketLon, shop.Latitude, shop.Longitude)
	assert.Nil(t, route.RouteID)
	assert.Equal(t, geo.Round(distance, 2), route.DistanceMeters)
	assert.Equal(t, int(distance/1.4), route.EstimatedTimeSeconds)
	assert.Equal(t, [][2]float64{
		{testMarketLon, testMarketLat},
		{shop.Longitude, shop.Latitude},
	}, route.Coordinates)
	assert.True(t, route.IsIndoorRoute)
	assert.True(t, route.IsAccessible)
	require.NotNil(t, route.MarketID)
	assert.Equal(t, market.ID, *route.MarketID)

	assert.Equal(t, shop.Name, route.Destination.Name)
	assert.Equal(t, "A-03", route.Destination.ShopNumber)
	require.NotNil(t, route.Destination.ShopID)
	assert.Equal(t, shop.ID, *route.Destination.ShopID)

	require.Len(t, route.Instructions, 2)
	assert.Equal(t, "Head north toward Thai Tea", route.Instructions[0].Instruction)
	assert.Equal(t, geo.Round(distance, 2), route.Instructions[0].DistanceMeters)
	assert.Equal(t, []float64{testMarketLon, testMarketLat}, route.Instructions[0].Coordinates)
	assert.Equal(t, "Arrive at Thai Tea", route.Instructions[1].Instruction)
	assert.Zero(t, route.Instructions[1].DistanceMeters)
	assert.Equal(t, []float64{shop.Longitude, shop.Latitude}, route.Instructions[1].Coordinates)
}

func TestRouteService_RouteToShop_StartOutsideBoundary(t *testing.T) {
	service, fx := createTestRouteService(t)

	ctx := context.Background()
	market := &entity.Market{ID: uuid.New(), Boundary: testBoundary()}
	shop := newTestShop(market.ID, "Thai Tea", "A-03", testMarketLat, testMarketLon)
	input := &usecase.RouteToShopInput{
		StartLatitude:  testMarketLat + 0.01,
		StartLongitude: testMarketLon,
		ShopID:         shop.ID,
	}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.routeRepo.EXPECT().FindGenericRouteForShop(ctx, shop.ID).Return(nil, repository.ErrRouteNotFound)
	fx.marketRepo.EXPECT().FindMarketByID(ctx, market.ID).Return(market, nil)

	route, err := service.RouteToShop(ctx, input)
	require.NoError(t, err)
	assert.False(t, route.IsIndoorRoute)
	assert.Equal(t, "Head south toward Thai Tea", route.Instructions[0].Instruction)
}

func TestRouteService_RouteToShop_MissingMarketIsOutdoor(t *testing.T) {
	service, fx := createTestRouteService(t)

	ctx := context.Background()
	shop := newTestShop(uuid.New(), "Thai Tea", "A-03", testMarketLat+0.001, testMarketLon)
	input := &usecase.RouteToShopInput{StartLatitude: testMarketLat, StartLongitude: testMarketLon, ShopID: shop.ID}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.routeRepo.EXPECT().FindGenericRouteForShop(ctx, shop.ID).Return(nil, repository.ErrRouteNotFound)
	fx.marketRepo.EXPECT().FindMarketByID(ctx, shop.MarketID).Return(nil, repository.ErrMarketNotFound)

	route, err := service.RouteToShop(ctx, input)
	require.NoError(t, err)
	assert.False(t, route.IsIndoorRoute)
}

func TestRouteService_RouteToShop_ReusesGenericRoute(t *testing.T) {
	service, fx := createTestRouteService(t)

	ctx := context.Background()
	shop := newTestShop(uuid.New(), "Thai Tea", "A-03", testMarketLat+0.001, testMarketLon)
	shopID := shop.ID
	stored := &entity.NavigationRoute{
		ID:        uuid.New(),
		MarketID:  shop.MarketID,
		EndShopID: &shopID,
		Coordinates: [][2]float64{
			{testMarketLon, testMarketLat},
			{testMarketLon + 0.0003, testMarketLat + 0.0005},
			{shop.Longitude, shop.Latitude},
		},
		IndoorCoordinates:        []entity.IndoorPoint{{X: 1, Y: 2, Floor: 0}},
		DistanceMeters:           9999,
		EstimatedWalkTimeSeconds: 9999,
		IsIndoorRoute:            true,
		IsAccessibleRoute:        false,
		Instructions:             []entity.RouteInstruction{{Step: 1, Instruction: "Pass the fountain"}},
		Landmarks:                []string{"fountain"},
	}
	input := &usecase.RouteToShopInput{StartLatitude: testMarketLat, StartLongitude: testMarketLon, ShopID: shop.ID}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.routeRepo.EXPECT().FindGenericRouteForShop(ctx, shop.ID).Return(stored, nil)

	route, err := service.RouteToShop(ctx, input)
	require.NoError(t, err)

	distance := geo.Distance(testMarketLat, testMarketLon, shop.Latitude, shop.Longitude)
	require.NotNil(t, route.RouteID)
	assert.Equal(t, stored.ID, *route.RouteID)
	assert.Equal(t, distance, route.DistanceMeters)
	assert.Equal(t, int(distance/1.4), route.EstimatedTimeSeconds)
	assert.Equal(t, stored.Coordinates, route.Coordinates)
	assert.Equal(t, stored.IndoorCoordinates, route.IndoorCoordinates)
	assert.Equal(t, stored.Instructions, route.Instructions)
	assert.Equal(t, stored.Landmarks, route.Landmarks)
	assert.True(t, route.IsIndoorRoute)
	assert.False(t, route.IsAccessible)
}

func TestRouteService_RouteToShop_ShopNotFound(t *testing.T) {
	service, fx := createTestRouteService(t)

	ctx := context.Background()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().FindShopByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	route, err := service.RouteToShop(ctx, &usecase.RouteToShopInput{ShopID: shopID})
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	assert.Nil(t, route)
}

func TestRouteService_RouteToShop_RouteLookupError(t *testing.T) {
	service, fx := createTestRouteService(t)

	ctx := context.Background()
	shop := newTestShop(uuid.New(), "Thai Tea", "A-03", testMarketLat, testMarketLon)
	dbErr := errors.New("connection refused")

	fx.shopRepo.EXPECT().FindShopByID(ctx, shop.ID).Return(shop, nil)
	fx.routeRepo.EXPECT().FindGenericRouteForShop(ctx, shop.ID).Return(nil, dbErr)

	route, err := service.RouteToShop(ctx, &usecase.RouteToShopInput{ShopID: shop.ID})
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, route)
}
