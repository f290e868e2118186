package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ZoneType classifies a geofence zone.
type ZoneType string

const (
	ZoneTypeEntrance      ZoneType = "entrance"
	ZoneTypeParking       ZoneType = "parking"
	ZoneTypeFoodCourt     ZoneType = "food_court"
	ZoneTypeRestroom      ZoneType = "restroom"
	ZoneTypeSection       ZoneType = "section"
	ZoneTypeEmergencyExit ZoneType = "emergency_exit"
	ZoneTypeLoadingDock   ZoneType = "loading_dock"
)

// IsValid checks if the ZoneType is a known value.
func (z ZoneType) IsValid() bool {
	switch z {
	case ZoneTypeEntrance, ZoneTypeParking, ZoneTypeFoodCourt, ZoneTypeRestroom,
		ZoneTypeSection, ZoneTypeEmergencyExit, ZoneTypeLoadingDock:
		return true
	default:
		return false
	}
}

// GeofenceZone is a named circular area inside a market.
// Membership is decided by the center and radius; Boundary is descriptive only.
type GeofenceZone struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the zone.
	MarketID        uuid.UUID // The market the zone belongs to.
	Name            string    // Display name.
	ZoneType        ZoneType  // Zone classification.
	Description     string    // Free-form description.
	Boundary        orb.Ring  // Informational outline, each point is [lon, lat].
	CenterLatitude  float64   // Latitude of the detection center.
	CenterLongitude float64   // Longitude of the detection center.
	RadiusMeters    float64   // Detection radius in meters.
	IsIndoor        bool      // Whether the zone is inside the building.
	FloorLevel      int       // Floor number of the zone.
	IsRestricted    bool      // Whether the zone is staff only.
	CreatedAt       time.Time // Timestamp of when this zone was created. Detection order follows it.
}
