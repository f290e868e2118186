package usecase

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceUsecase answers containment questions against market boundaries and zones
type GeofenceUsecase interface {
	// IsInZone reports whether the point lies within the zone's detection circle
	IsInZone(lat, lon float64, zone *entity.GeofenceZone) bool

	// IsIndoor reports whether the point lies inside the market boundary
	IsIndoor(lat, lon float64, market *entity.Market) bool

	// DetectZone returns the first zone of the market containing the point, or nil
	DetectZone(ctx context.Context, lat, lon float64, marketID uuid.UUID) (*entity.GeofenceZone, error)

	// ListZones returns the zones of a market in detection order
	ListZones(ctx context.Context, marketID uuid.UUID) ([]*entity.GeofenceZone, error)
}
