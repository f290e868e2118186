package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserLocation is an immutable sample of where a user was, with the context derived at ingestion.
type UserLocation struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the sample.
	UserID         uuid.UUID  // The reporting user.
	MarketID       *uuid.UUID // Market resolved for the sample, if any.
	Latitude       float64    // Reported latitude.
	Longitude      float64    // Reported longitude.
	Altitude       *float64   // Reported altitude.
	AccuracyMeters *float64   // Reported horizontal accuracy.
	IndoorX        *float64   // Reported indoor X coordinate.
	IndoorY        *float64   // Reported indoor Y coordinate.
	FloorLevel     *int       // Reported floor.
	IsIndoor       bool       // Whether the point lies inside the market boundary.
	CurrentShopID  *uuid.UUID // Shop the user stands at, if any.
	CurrentZoneID  *uuid.UUID // Zone the user stands in, if any.
	BatteryLevel   *int       // Device battery percentage.
	SignalStrength *int       // Device signal strength.
	Timestamp      time.Time  // Time the sample was recorded.
}
