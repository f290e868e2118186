package geo

import (
	"math"
	"slices"

	"github.com/uber/h3-go/v4"

	"marketnav/internal/domain/entity"
)

// DefaultGridResolution buckets shops into cells with roughly 200 m edges.
const DefaultGridResolution = 9

// maxGridRings bounds the k-ring expansion; wider searches scan every shop instead.
const maxGridRings = 40

// average hexagon edge length in meters for each H3 resolution
var edgeLengthMeters = [16]float64{
	1281256.0, 483056.8, 182512.9, 68979.2, 26071.8, 9854.1, 3724.5, 1406.5,
	531.4, 200.8, 75.9, 28.7, 10.8, 4.1, 1.5, 0.58,
}

// ShopGrid buckets shops by H3 cell so radius lookups only touch nearby cells.
// Candidates is a coarse prefilter; callers still apply Distance for the exact cut.
type ShopGrid struct {
	resolution int
	shops      []*entity.Shop
	cells      map[h3.Cell][]int // cell -> indices into shops
}

// NewShopGrid indexes shops at the given resolution. Out-of-range resolutions use DefaultGridResolution.
func NewShopGrid(resolution int, shops []*entity.Shop) *ShopGrid {
	if resolution < 0 || resolution > 15 {
		resolution = DefaultGridResolution
	}

	g := &ShopGrid{
		resolution: resolution,
		shops:      shops,
		cells:      make(map[h3.Cell][]int, len(shops)),
	}
	for i, s := range shops {
		cell := h3.LatLngToCell(h3.LatLng{Lat: s.Latitude, Lng: s.Longitude}, resolution)
		g.cells[cell] = append(g.cells[cell], i)
	}

	return g
}

// Len returns the number of indexed shops.
func (g *ShopGrid) Len() int {
	return len(g.shops)
}

// Candidates returns shops whose cells may lie within radiusMeters of (lat, lon), in index order.
func (g *ShopGrid) Candidates(lat, lon, radiusMeters float64) []*entity.Shop {
	k := g.ringsFor(radiusMeters)
	if k > maxGridRings {
		return slices.Clone(g.shops)
	}

	origin := h3.LatLngToCell(h3.LatLng{Lat: lat, Lng: lon}, g.resolution)

	var idx []int
	for _, cell := range h3.GridDisk(origin, k) {
		idx = append(idx, g.cells[cell]...)
	}
	slices.Sort(idx)

	out := make([]*entity.Shop, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.shops[i])
	}

	return out
}

// ringsFor picks a k that covers the radius plus a cell on either side.
// Dividing by the edge length rather than the center spacing leaves room for grid distortion.
func (g *ShopGrid) ringsFor(radiusMeters float64) int {
	if radiusMeters < 0 {
		radiusMeters = 0
	}
	edge := edgeLengthMeters[g.resolution]

	return int(math.Ceil((radiusMeters+2*edge)/edge)) + 1
}
