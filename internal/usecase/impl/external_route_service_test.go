package impl

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"marketnav/config"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/service"
	mockSvc "marketnav/internal/mocks/service"
	"marketnav/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type externalRouteFixtures struct {
	google *mockSvc.MockRouteProvider
	mapbox *mockSvc.MockRouteProvider
	cache  *mockSvc.MockRouteCache
}

func createTestExternalRouteService(t *testing.T, cfg *config.Config) (usecase.ExternalRouteUsecase, *externalRouteFixtures) {
	fx := &externalRouteFixtures{
		google: mockSvc.NewMockRouteProvider(t),
		mapbox: mockSvc.NewMockRouteProvider(t),
		cache:  mockSvc.NewMockRouteCache(t),
	}
	fx.google.EXPECT().Name().Return("google")
	fx.mapbox.EXPECT().Name().Return("mapbox")

	svc := NewExternalRouteService([]service.RouteProvider{fx.google, fx.mapbox}, fx.cache, cfg, newTestLogger())

	return svc, fx
}

func newExternalRouteInput(provider string) *usecase.ExternalRouteInput {
	return &usecase.ExternalRouteInput{
		Provider:       provider,
		StartLatitude:  testMarketLat,
		StartLongitude: testMarketLon,
		EndLatitude:    13.80002,
		EndLongitude:   100.55004,
	}
}

func TestExternalRouteService_Directions_CacheMiss(t *testing.T) {
	cfg := &config.Config{ExternalRoutes: &config.ExternalRoutesConfig{CacheTTL: 2 * time.Minute}}
	svc, fx := createTestExternalRouteService(t, cfg)

	ctx := context.Background()
	input := newExternalRouteInput("mapbox")
	key := "mapbox:walking:13.7563,100.5018:13.8000,100.5500"
	route := &service.ExternalRoute{Provider: "mapbox", DistanceMeters: 6500, DurationSeconds: 4600}

	fx.cache.EXPECT().Get(ctx, key).Return(nil, nil)
	fx.mapbox.EXPECT().
		Directions(ctx, service.DirectionsRequest{
			StartLatitude:  input.StartLatitude,
			StartLongitude: input.StartLongitude,
			EndLatitude:    input.EndLatitude,
			EndLongitude:   input.EndLongitude,
			Mode:           entity.NavigationModeWalking,
		}).
		Return(route, nil)
	fx.cache.EXPECT().Set(ctx, key, route, 2*time.Minute).Return(nil)

	result, err := svc.Directions(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, route, result)
}

func TestExternalRouteService_Directions_CacheHit(t *testing.T) {
	svc, fx := createTestExternalRouteService(t, &config.Config{})

	ctx := context.Background()
	input := newExternalRouteInput("")
	input.NavigationMode = entity.NavigationModeDriving
	cached := &service.ExternalRoute{Provider: "google", DistanceMeters: 7100, DurationSeconds: 900}

	fx.cache.EXPECT().Get(ctx, "google:driving:13.7563,100.5018:13.8000,100.5500").Return(cached, nil)

	result, err := svc.Directions(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, cached, result)
	fx.google.AssertNotCalled(t, "Directions", mock.Anything, mock.Anything)
}

func TestExternalRouteService_Directions_CacheFailuresAreIgnored(t *testing.T) {
	svc, fx := createTestExternalRouteService(t, &config.Config{})

	ctx := context.Background()
	input := newExternalRouteInput("google")
	route := &service.ExternalRoute{Provider: "google", DistanceMeters: 6500}

	fx.cache.EXPECT().Get(ctx, mock.AnythingOfType("string")).Return(nil, errors.New("redis: connection refused"))
	fx.google.EXPECT().Directions(ctx, mock.AnythingOfType("service.DirectionsRequest")).Return(route, nil)
	fx.cache.EXPECT().
		Set(ctx, mock.AnythingOfType("string"), route, defaultRouteCacheTTL).
		Return(errors.New("redis: connection refused"))

	result, err := svc.Directions(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, route, result)
}

func TestExternalRouteService_Directions_ProviderFailure(t *testing.T) {
	svc, fx := createTestExternalRouteService(t, &config.Config{})

	ctx := context.Background()
	input := newExternalRouteInput("google")

	fx.cache.EXPECT().Get(ctx, mock.AnythingOfType("string")).Return(nil, nil)
	fx.google.EXPECT().
		Directions(ctx, mock.AnythingOfType("service.DirectionsRequest")).
		Return(nil, errors.New("google directions: status 500"))

	result, err := svc.Directions(ctx, input)
	assert.Nil(t, result)
	require.ErrorIs(t, err, domainerrors.ErrExternalRouteUnavailable)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "google directions: status 500", appErr.Details())
}

func TestExternalRouteService_Directions_UnknownProvider(t *testing.T) {
	svc, _ := createTestExternalRouteService(t, &config.Config{})

	result, err := svc.Directions(context.Background(), newExternalRouteInput("osrm"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, result)
}
