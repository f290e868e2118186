package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	mockUC "marketnav/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestGeofenceHandler(t *testing.T) (*GeofenceHandler, *mockUC.MockGeofenceUsecase) {
	geofenceUC := mockUC.NewMockGeofenceUsecase(t)

	return NewGeofenceHandler(GeofenceHandlerParams{GeofenceUC: geofenceUC, Logger: slog.Default()}), geofenceUC
}

func TestGeofenceHandler_DetectZone(t *testing.T) {
	marketID := uuid.New()
	zone := &entity.GeofenceZone{
		ID:              uuid.New(),
		MarketID:        marketID,
		Name:            "Main Entrance",
		ZoneType:        entity.ZoneTypeEntrance,
		Boundary:        orb.Ring{{100.5017, 13.7562}, {100.5019, 13.7562}, {100.5019, 13.7564}},
		CenterLatitude:  13.7563,
		CenterLongitude: 100.5018,
		RadiusMeters:    15,
		CreatedAt:       time.Now(),
	}

	tests := []struct {
		name         string
		zone         *entity.GeofenceZone
		expectInZone bool
	}{
		{name: "inside a zone", zone: zone, expectInZone: true},
		{name: "outside every zone", zone: nil, expectInZone: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, geofenceUC := createTestGeofenceHandler(t)
			geofenceUC.EXPECT().DetectZone(mock.Anything, 13.7563, 100.5018, marketID).Return(tt.zone, nil)

			c, rec := newTestContext(t, testRequest{
				method: http.MethodPost,
				target: "/api/v1/geofence/detect-zone",
				body:   `{"latitude": 13.7563, "longitude": 100.5018, "market_id": "` + marketID.String() + `"}`,
			})

			require.NoError(t, h.DetectZone(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			data := decodeData(t, rec)
			assert.Equal(t, tt.expectInZone, data["in_zone"])
			if tt.zone == nil {
				assert.Nil(t, data["zone"])

				return
			}
			got := data["zone"].(map[string]any)
			assert.Equal(t, "Main Entrance", got["name"])
			assert.Equal(t, "entrance", got["zone_type"])
			assert.Len(t, got["boundary_coordinates"], 3)
		})
	}
}

func TestGeofenceHandler_DetectZone_MarketNotFound(t *testing.T) {
	h, geofenceUC := createTestGeofenceHandler(t)
	geofenceUC.EXPECT().DetectZone(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrMarketNotFound)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/v1/geofence/detect-zone",
		body:   `{"latitude": 13.7563, "longitude": 100.5018, "market_id": "` + uuid.NewString() + `"}`,
	})

	require.NoError(t, h.DetectZone(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MARKET_NOT_FOUND", decodeError(t, rec).Code)
}

func TestGeofenceHandler_ListZones(t *testing.T) {
	h, geofenceUC := createTestGeofenceHandler(t)
	marketID := uuid.New()
	geofenceUC.EXPECT().ListZones(mock.Anything, marketID).Return([]*entity.GeofenceZone{
		{ID: uuid.New(), MarketID: marketID, Name: "Main Entrance", ZoneType: entity.ZoneTypeEntrance},
		{ID: uuid.New(), MarketID: marketID, Name: "Car Park", ZoneType: entity.ZoneTypeParking},
	}, nil)

	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/geofence?market=" + marketID.String()})

	require.NoError(t, h.ListZones(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Car Park"`)
}

func TestGeofenceHandler_ListZones_MissingMarket(t *testing.T) {
	h, _ := createTestGeofenceHandler(t)
	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/geofence"})

	require.NoError(t, h.ListZones(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}
