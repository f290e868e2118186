package postgres

import (
	"context"

	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/repository"
	"marketnav/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geofenceZoneRepository implements the repository.GeofenceZoneRepository interface.
type geofenceZoneRepository struct {
	db *gorm.DB
}

// NewGeofenceZoneRepository is the constructor for geofenceZoneRepository.
func NewGeofenceZoneRepository(db *gorm.DB) repository.GeofenceZoneRepository {
	return &geofenceZoneRepository{
		db: db,
	}
}

// FindZonesByMarket returns the zones of a market ordered by creation time, then ID.
func (repo *geofenceZoneRepository) FindZonesByMarket(ctx context.Context, marketID uuid.UUID) ([]*entity.GeofenceZone, error) {
	var zoneModels []*model.GeofenceZoneModel

	if err := repo.db.WithContext(ctx).
		Where("market_id = ?", marketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofence zones by market")
	}

	zones := make([]*entity.GeofenceZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, toGeofenceZoneDomain(zoneM))
	}

	return zones, nil
}

// --- Mapper Functions ---

// toGeofenceZoneDomain converts a GORM GeofenceZoneModel to a domain GeofenceZone entity.
func toGeofenceZoneDomain(data *model.GeofenceZoneModel) *entity.GeofenceZone {
	if data == nil {
		return nil
	}

	return &entity.GeofenceZone{
		ID:              data.ID,
		MarketID:        data.MarketID,
		Name:            data.Name,
		ZoneType:        entity.ZoneType(data.ZoneType),
		Description:     derefString(data.Description),
		Boundary:        toRing(data.BoundaryCoordinates),
		CenterLatitude:  data.CenterLatitude,
		CenterLongitude: data.CenterLongitude,
		RadiusMeters:    data.RadiusMeters,
		IsIndoor:        data.IsIndoor,
		FloorLevel:      data.FloorLevel,
		IsRestricted:    data.IsRestricted,
		CreatedAt:       data.CreatedAt,
	}
}
