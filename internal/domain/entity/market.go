package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Market is a physical marketplace that groups shops and geofence zones.
type Market struct {
	ID                       uuid.UUID // The Global Unique Identifier (GUID) for the market.
	Name                     string    // Display name.
	Description              string    // Free-form description.
	Address                  string    // Street address.
	City                     string    // City the market is located in.
	State                    string    // State or region.
	Country                  string    // Country name.
	Latitude                 float64   // Reference latitude of the market.
	Longitude                float64   // Reference longitude of the market.
	OpeningTime              string    // Opening time as HH:MM, empty when unknown.
	ClosingTime              string    // Closing time as HH:MM, empty when unknown.
	Boundary                 orb.Ring  // Boundary polygon, each point is [lon, lat]. Nil when unmapped.
	IndoorMapEnabled         bool      // Whether indoor routing is offered.
	OutdoorNavigationEnabled bool      // Whether outdoor routing is offered.
	HasMapData               bool      // Whether a map asset has been uploaded for the market.
	CreatedAt                time.Time // Timestamp of when this market was created.
	UpdatedAt                time.Time // Timestamp of the last modification.
}

// HasBoundary reports whether the market has a usable boundary polygon.
func (m *Market) HasBoundary() bool {
	return len(m.Boundary) >= 3
}
