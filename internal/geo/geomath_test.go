package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var unitSquare = orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

func TestDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{"same point", 25.0330, 121.5654, 25.0330, 121.5654, 0, 0},
		{"one degree of latitude", 0, 0, 1, 0, 111194.93, 0.5},
		{"taipei 101 to taipei main station", 25.0339, 121.5645, 25.0478, 121.5170, 5030, 60},
		{"lagos short hop", 6.4550, 3.3841, 6.4560, 3.3841, 111.19, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.delta)
			assert.Equal(t, got, Distance(tt.lat2, tt.lon2, tt.lat1, tt.lon1))
		})
	}
}

func TestDistance_MonotonicForSmallSpans(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 20; i++ {
		d := Distance(6.45, 3.38, 6.45+float64(i)*0.0001, 3.38)
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestBearing(t *testing.T) {
	assert.InDelta(t, 0, Bearing(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, 90, Bearing(0, 0, 0, 1), 1e-9)
	assert.InDelta(t, 180, Bearing(1, 0, 0, 0), 1e-9)
	assert.InDelta(t, 270, Bearing(0, 1, 0, 0), 1e-9)

	b := Bearing(25.0339, 121.5645, 25.0478, 121.5170)
	assert.GreaterOrEqual(t, b, 0.0)
	assert.Less(t, b, 360.0)
}

func TestBearing_ReverseDiffersBy180(t *testing.T) {
	pairs := [][4]float64{
		{25.0339, 121.5645, 25.0350, 121.5660},
		{6.4550, 3.3841, 6.4540, 3.3830},
		{-33.8688, 151.2093, -33.8690, 151.2100},
		{0, 0, 0, 0.001},
	}

	for _, p := range pairs {
		forward := Bearing(p[0], p[1], p[2], p[3])
		reverse := Bearing(p[2], p[3], p[0], p[1])
		diff := math.Mod(math.Abs(forward-reverse), 360)
		assert.InDelta(t, 180, diff, 0.01, "pair %v", p)
	}
}

func TestBearingToCardinal(t *testing.T) {
	tests := []struct {
		bearing float64
		want    Direction
	}{
		{0, North},
		{10, North},
		{44, Northeast},
		{90, East},
		{135, Southeast},
		{180, South},
		{225, Southwest},
		{270, West},
		{315, Northwest},
		{350, North},
		{359.9, North},
		{22.5, North},
		{67.5, East},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BearingToCardinal(tt.bearing), "bearing %v", tt.bearing)
	}
}

func TestPointInPolygon(t *testing.T) {
	assert.True(t, PointInPolygon(0.5, 0.5, unitSquare))
	assert.False(t, PointInPolygon(2, 2, unitSquare))
	assert.False(t, PointInPolygon(-0.1, 0.5, unitSquare))

	// explicitly closed ring behaves the same
	closed := append(orb.Ring{}, unitSquare...)
	closed = append(closed, unitSquare[0])
	assert.True(t, PointInPolygon(0.5, 0.5, closed))
	assert.False(t, PointInPolygon(2, 2, closed))
}

func TestPointInPolygon_VertexIsStable(t *testing.T) {
	first := PointInPolygon(1, 1, unitSquare)
	for range 10 {
		assert.Equal(t, first, PointInPolygon(1, 1, unitSquare))
	}
}

func TestPointInPolygon_Degenerate(t *testing.T) {
	assert.False(t, PointInPolygon(0, 0, nil))
	assert.False(t, PointInPolygon(0.5, 0.5, orb.Ring{{0, 0}, {1, 1}}))
}

func TestPointInPolygon_UsesLonAsX(t *testing.T) {
	// a tall thin market: 0.001 deg of longitude wide, 0.01 deg of latitude tall
	ring := orb.Ring{{3.3800, 6.4500}, {3.3810, 6.4500}, {3.3810, 6.4600}, {3.3800, 6.4600}}

	assert.True(t, PointInPolygon(6.4550, 3.3805, ring))
	assert.False(t, PointInPolygon(3.3805, 6.4550, ring))
}

func TestIndoorDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{"east on the map", 10, 0, Right},
		{"west on the map", -10, 0, Left},
		{"up the map", 0, 10, Forward},
		{"down the map", 0, -10, Backward},
		{"diagonal tie goes vertical", 5, 5, Forward},
		{"no movement", 0, 0, Backward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndoorDirection(tt.dx, tt.dy))
		})
	}
}

func TestEuclideanAndRound(t *testing.T) {
	assert.Equal(t, 5.0, Euclidean(0, 0, 3, 4))
	assert.Equal(t, 12.35, Round(12.3456, 2))
	assert.Equal(t, 12.3, Round(12.3456, 1))
}
