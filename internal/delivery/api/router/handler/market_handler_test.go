package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	mockUC "marketnav/internal/mocks/usecase"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMarketHandler(t *testing.T) (*MarketHandler, *mockUC.MockMarketUsecase) {
	marketUC := mockUC.NewMockMarketUsecase(t)

	return NewMarketHandler(MarketHandlerParams{MarketUC: marketUC, Logger: slog.Default()}), marketUC
}

func newTestMarket() *entity.Market {
	return &entity.Market{
		ID:                       uuid.New(),
		Name:                     "Chatuchak",
		City:                     "Bangkok",
		Latitude:                 13.7563,
		Longitude:                100.5018,
		IndoorMapEnabled:         true,
		OutdoorNavigationEnabled: true,
	}
}

func TestMarketHandler_PinSearch(t *testing.T) {
	h, marketUC := createTestMarketHandler(t)
	market := newTestMarket()
	marketUC.EXPECT().PinSearch(mock.Anything, 13.7573, 100.5018).Return(&usecase.MarketMatch{Market: market, DistanceMeters: 111}, nil)

	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/markets/pin-search?lat=13.7573&lng=100.5018"})

	require.NoError(t, h.PinSearch(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, market.ID.String(), data["id"])
	assert.Equal(t, "Chatuchak", data["name"])
	assert.Equal(t, float64(111), data["distance"])
}

func TestMarketHandler_PinSearch_Errors(t *testing.T) {
	t.Run("missing lng", func(t *testing.T) {
		h, _ := createTestMarketHandler(t)
		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/markets/pin-search?lat=13.7"})

		require.NoError(t, h.PinSearch(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Both 'lat' and 'lng' parameters are required", decodeError(t, rec).Message)
	})

	t.Run("nothing nearby", func(t *testing.T) {
		h, marketUC := createTestMarketHandler(t)
		marketUC.EXPECT().PinSearch(mock.Anything, 0.0, 0.0).Return(nil, domainerrors.ErrNoMarketNearby)

		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/markets/pin-search?lat=0&lng=0"})

		require.NoError(t, h.PinSearch(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No markets found near this location", decodeError(t, rec).Message)
	})
}

func TestMarketHandler_ListShops(t *testing.T) {
	market := newTestMarket()
	shops := []*entity.Shop{
		{ID: uuid.New(), MarketID: market.ID, Name: "Thai Tea", ShopNumber: "A-12"},
		{ID: uuid.New(), MarketID: market.ID, Name: "Pad Thai", ShopNumber: "B-03"},
	}

	t.Run("without position", func(t *testing.T) {
		h, marketUC := createTestMarketHandler(t)
		marketUC.EXPECT().ListShops(mock.Anything, market.ID, (*float64)(nil), (*float64)(nil)).
			Return(&usecase.MarketShops{Market: market, Shops: shops}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/v1/markets/" + market.ID.String() + "/shops",
			params: map[string]string{"id": market.ID.String()},
		})

		require.NoError(t, h.ListShops(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		data := decodeData(t, rec)
		assert.Equal(t, float64(2), data["count"])
		first := data["shops"].([]any)[0].(map[string]any)
		assert.NotContains(t, first, "distance_meters")
	})

	t.Run("sorted by distance", func(t *testing.T) {
		h, marketUC := createTestMarketHandler(t)
		lat, lon := 13.7563, 100.5018
		marketUC.EXPECT().ListShops(mock.Anything, market.ID, &lat, &lon).
			Return(&usecase.MarketShops{Market: market, Shops: shops, Distances: []float64{4.5, 20.25}}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/v1/markets/" + market.ID.String() + "/shops?user_latitude=13.7563&user_longitude=100.5018",
			params: map[string]string{"id": market.ID.String()},
		})

		require.NoError(t, h.ListShops(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		got := decodeData(t, rec)["shops"].([]any)
		assert.Equal(t, 4.5, got[0].(map[string]any)["distance_meters"])
		assert.Equal(t, 20.25, got[1].(map[string]any)["distance_meters"])
	})
}

func TestMarketHandler_NavigationInfo(t *testing.T) {
	h, marketUC := createTestMarketHandler(t)
	market := newTestMarket()
	marketUC.EXPECT().NavigationInfo(mock.Anything, market.ID).Return(&usecase.MarketNavigationInfo{
		Market:                   market,
		IndoorNavigationEnabled:  true,
		OutdoorNavigationEnabled: true,
		ShopsCount:               42,
		GeofenceZonesCount:       3,
		EntranceZones:            []*entity.GeofenceZone{{ID: uuid.New(), Name: "Gate 1", ZoneType: entity.ZoneTypeEntrance}},
		ParkingZones:             []*entity.GeofenceZone{},
	}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/markets/" + market.ID.String() + "/navigation-info",
		params: map[string]string{"id": market.ID.String()},
	})

	require.NoError(t, h.NavigationInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(42), data["shops_count"])
	assert.Equal(t, float64(3), data["geofence_zones_count"])
	assert.Equal(t, false, data["has_boundary_data"])
	assert.Len(t, data["entrance_zones"], 1)
	assert.Equal(t, []any{}, data["parking_zones"])
}

func TestMarketHandler_CheckIndoor(t *testing.T) {
	h, marketUC := createTestMarketHandler(t)
	market := newTestMarket()
	marketUC.EXPECT().CheckIndoor(mock.Anything, market.ID, 13.7563, 100.5018).Return(&usecase.IndoorCheck{
		IsIndoor:  true,
		Market:    market,
		Latitude:  13.7563,
		Longitude: 100.5018,
	}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/v1/markets/" + market.ID.String() + "/check-indoor",
		body:   `{"latitude": 13.7563, "longitude": 100.5018}`,
		params: map[string]string{"id": market.ID.String()},
	})

	require.NoError(t, h.CheckIndoor(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, true, data["is_indoor"])
	assert.Equal(t, "Chatuchak", data["market_name"])
	assert.Nil(t, data["current_zone"])
	assert.Equal(t, map[string]any{"latitude": 13.7563, "longitude": 100.5018}, data["coordinates"])
}

func TestMarketHandler_CheckIndoor_MissingCoordinates(t *testing.T) {
	h, _ := createTestMarketHandler(t)
	marketID := uuid.NewString()
	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/v1/markets/" + marketID + "/check-indoor",
		body:   `{"latitude": 13.7563}`,
		params: map[string]string{"id": marketID},
	})

	require.NoError(t, h.CheckIndoor(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestMarketHandler_GeoJSON(t *testing.T) {
	h, marketUC := createTestMarketHandler(t)
	marketID := uuid.New()

	fc := geojson.NewFeatureCollection()
	feature := geojson.NewFeature(orb.Point{100.5018, 13.7563})
	feature.Properties["name"] = "Chatuchak"
	fc.Append(feature)
	marketUC.EXPECT().GeoJSON(mock.Anything, marketID).Return(fc, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/markets/" + marketID.String() + "/geojson",
		params: map[string]string{"id": marketID.String()},
	})

	require.NoError(t, h.GeoJSON(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	got, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, got.Features, 1)
	assert.Equal(t, orb.Point{100.5018, 13.7563}, got.Features[0].Geometry)
}
