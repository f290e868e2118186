package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFloorLevel is the floor label assigned to shops without an explicit floor.
const DefaultFloorLevel = "Ground Floor"

// Shop is a seller's stall inside a market.
type Shop struct {
	ID                  uuid.UUID // The Global Unique Identifier (GUID) for the shop.
	MarketID            uuid.UUID // The market the shop belongs to.
	SellerID            uuid.UUID // The owning seller account.
	Name                string    // Display name.
	Description         string    // Free-form description.
	ShopNumber          string    // Stall number, unique within a market.
	FloorLevel          string    // Human readable floor label, e.g. "Ground Floor".
	Latitude            float64   // Geographic latitude.
	Longitude           float64   // Geographic longitude.
	Altitude            *float64  // Optional altitude for multi-storey markets.
	IndoorX             *float64  // X coordinate on the indoor map.
	IndoorY             *float64  // Y coordinate on the indoor map.
	IndoorFloor         *int      // Floor number on the indoor map.
	EntranceLatitude    *float64  // Latitude of the shop entrance, if different from the shop point.
	EntranceLongitude   *float64  // Longitude of the shop entrance.
	IsAccessible        bool      // Whether the shop can be reached on an accessible route.
	HasWheelchairAccess bool      // Whether the shop has wheelchair access.
	NavigationLandmarks []string  // Landmarks that help locate the shop.
	IsActive            bool      // Inactive shops are hidden from search.
	IsVerified          bool      // Unverified shops are hidden from search.
	CreatedAt           time.Time // Timestamp of when this shop was created.
	UpdatedAt           time.Time // Timestamp of the last modification.
}

// IsDiscoverable reports whether the shop may appear in nearby and market listings.
func (s *Shop) IsDiscoverable() bool {
	return s.IsActive && s.IsVerified
}
