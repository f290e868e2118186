package repository

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceZoneRepository defines the read operations on geofence zones.
type GeofenceZoneRepository interface {
	// FindZonesByMarket returns the zones of a market ordered by creation time, then ID.
	// Zone detection is first-match over this order.
	FindZonesByMarket(ctx context.Context, marketID uuid.UUID) ([]*entity.GeofenceZone, error)
}
