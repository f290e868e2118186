package geo

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketnav/internal/domain/entity"
)

// offsetNorth returns a latitude roughly meters north of lat.
func offsetNorth(lat, meters float64) float64 {
	return lat + meters/111194.93
}

func TestShopGrid_CandidatesCoverRadius(t *testing.T) {
	const lat, lon = 6.4550, 3.3841

	near := &entity.Shop{ID: uuid.New(), Name: "near", Latitude: offsetNorth(lat, 10), Longitude: lon}
	mid := &entity.Shop{ID: uuid.New(), Name: "mid", Latitude: offsetNorth(lat, 50), Longitude: lon}
	far := &entity.Shop{ID: uuid.New(), Name: "far", Latitude: offsetNorth(lat, 200), Longitude: lon}
	otherCity := &entity.Shop{ID: uuid.New(), Name: "abuja", Latitude: 9.0765, Longitude: 7.3986}

	grid := NewShopGrid(DefaultGridResolution, []*entity.Shop{far, near, otherCity, mid})
	require.Equal(t, 4, grid.Len())

	got := grid.Candidates(lat, lon, 100)

	assert.Contains(t, got, near)
	assert.Contains(t, got, mid)
	assert.NotContains(t, got, otherCity)

	// candidates keep the input order so ties stay deterministic
	assert.Less(t, slices.Index(got, near), slices.Index(got, mid))
}

func TestShopGrid_FineResolutionStillFindsShops(t *testing.T) {
	const lat, lon = 25.0339, 121.5645

	shops := make([]*entity.Shop, 0, 20)
	for i := range 20 {
		shops = append(shops, &entity.Shop{ID: uuid.New(), Latitude: offsetNorth(lat, float64(i*25)), Longitude: lon})
	}

	grid := NewShopGrid(12, shops)
	got := grid.Candidates(lat, lon, 120)

	for _, s := range shops {
		if Distance(lat, lon, s.Latitude, s.Longitude) <= 120 {
			assert.Contains(t, got, s)
		}
	}
}

func TestShopGrid_WideRadiusScansEverything(t *testing.T) {
	shops := []*entity.Shop{
		{ID: uuid.New(), Latitude: 6.45, Longitude: 3.38},
		{ID: uuid.New(), Latitude: 9.07, Longitude: 7.39},
	}

	grid := NewShopGrid(15, shops)

	assert.Equal(t, shops, grid.Candidates(6.45, 3.38, 5000))
}

func TestNewShopGrid_InvalidResolution(t *testing.T) {
	grid := NewShopGrid(42, nil)

	assert.Equal(t, DefaultGridResolution, grid.resolution)
	assert.Empty(t, grid.Candidates(0, 0, 100))
}
