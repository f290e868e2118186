// Package geo holds the pure geometry used by navigation: great-circle distance and bearing,
// compass directions, polygon containment and planar indoor math.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used for all distance calculations.
const EarthRadiusMeters = 6371000.0

// Direction is a human readable heading used in route instructions.
type Direction string

const (
	North     Direction = "north"
	Northeast Direction = "northeast"
	East      Direction = "east"
	Southeast Direction = "southeast"
	South     Direction = "south"
	Southwest Direction = "southwest"
	West      Direction = "west"
	Northwest Direction = "northwest"

	Right    Direction = "right"
	Left     Direction = "left"
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

var compass = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Distance returns the great-circle distance in meters between two lat/lon points (haversine).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := deg2rad(lat1)
	lat2Rad := deg2rad(lat2)
	deltaLat := deg2rad(lat2 - lat1)
	deltaLon := deg2rad(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// Bearing returns the initial bearing in degrees from the first point to the second, in [0, 360).
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	b := orbgeo.Bearing(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
	b = math.Mod(b+360, 360)
	if b >= 360 {
		b = 0
	}

	return b
}

// BearingToCardinal maps a bearing to one of the eight compass directions.
// Exact half-sector bearings round to the even sector.
func BearingToCardinal(bearing float64) Direction {
	idx := int(math.RoundToEven(bearing/45)) % 8
	if idx < 0 {
		idx += 8
	}

	return compass[idx]
}

// PointInPolygon reports whether (lat, lon) lies inside ring using ray casting with X = lon and Y = lat.
// The ring is implicitly closed; rings with fewer than three points contain nothing.
func PointInPolygon(lat, lon float64, ring orb.Ring) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	x, y := lon, lat
	inside := false

	p1 := ring[0]
	for i := 1; i <= n; i++ {
		p2 := ring[i%n]
		if y > math.Min(p1.Y(), p2.Y()) && y <= math.Max(p1.Y(), p2.Y()) && x <= math.Max(p1.X(), p2.X()) {
			// y is strictly between distinct Y values here, so the edge is not horizontal.
			xinters := (y-p1.Y())*(p2.X()-p1.X())/(p2.Y()-p1.Y()) + p1.X()
			if p1.X() == p2.X() || x <= xinters {
				inside = !inside
			}
		}
		p1 = p2
	}

	return inside
}

// Euclidean returns the planar distance between two indoor map points.
func Euclidean(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// IndoorDirection describes a planar displacement as right, left, forward or backward.
// Horizontal movement wins only when it strictly dominates.
func IndoorDirection(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right
		}

		return Left
	}

	if dy > 0 {
		return Forward
	}

	return Backward
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
