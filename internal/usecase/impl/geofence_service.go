package impl

import (
	"context"

	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/repository"
	"marketnav/internal/errors"
	"marketnav/internal/geo"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
)

type geofenceService struct {
	zoneRepo repository.GeofenceZoneRepository
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(zoneRepo repository.GeofenceZoneRepository) usecase.GeofenceUsecase {
	return &geofenceService{
		zoneRepo: zoneRepo,
	}
}

// IsInZone checks the distance to the zone center against its radius; the zone outline is ignored
func (s *geofenceService) IsInZone(lat, lon float64, zone *entity.GeofenceZone) bool {
	return geo.Distance(lat, lon, zone.CenterLatitude, zone.CenterLongitude) <= zone.RadiusMeters
}

// IsIndoor checks the point against the market boundary
func (s *geofenceService) IsIndoor(lat, lon float64, market *entity.Market) bool {
	if market == nil || !market.HasBoundary() {
		return false
	}

	return geo.PointInPolygon(lat, lon, market.Boundary)
}

// DetectZone returns the first containing zone in creation order.
// A market without zones, including an unknown one, yields nil.
func (s *geofenceService) DetectZone(ctx context.Context, lat, lon float64, marketID uuid.UUID) (*entity.GeofenceZone, error) {
	zones, err := s.zoneRepo.FindZonesByMarket(ctx, marketID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find zones by market")
	}

	for _, zone := range zones {
		if s.IsInZone(lat, lon, zone) {
			return zone, nil
		}
	}

	return nil, nil
}

// ListZones returns the zones of a market in detection order
func (s *geofenceService) ListZones(ctx context.Context, marketID uuid.UUID) ([]*entity.GeofenceZone, error) {
	zones, err := s.zoneRepo.FindZonesByMarket(ctx, marketID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find zones by market")
	}

	return zones, nil
}
