package postgres

import (
	"context"

	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const maxLocationHistory = 500

// userLocationRepository implements the repository.UserLocationRepository interface.
type userLocationRepository struct {
	db *gorm.DB
}

// NewUserLocationRepository is the constructor for userLocationRepository.
func NewUserLocationRepository(db *gorm.DB) repository.UserLocationRepository {
	return &userLocationRepository{
		db: db,
	}
}

// CreateLocation persists a new location sample.
func (repo *userLocationRepository) CreateLocation(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromUserLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user location")
	}

	location.ID = locationM.ID
	location.Timestamp = locationM.Timestamp

	return nil
}

// FindRecentLocationsByUser returns up to limit samples of a user, newest first.
func (repo *userLocationRepository) FindRecentLocationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.UserLocation, error) {
	if limit <= 0 || limit > maxLocationHistory {
		limit = maxLocationHistory
	}

	var locationModels []*model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user locations")
	}

	locations := make([]*entity.UserLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toUserLocationDomain(locationM))
	}

	return locations, nil
}

// --- Mapper Functions ---

// toUserLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toUserLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		ID:             data.ID,
		UserID:         data.UserID,
		MarketID:       data.MarketID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Altitude:       data.Altitude,
		AccuracyMeters: data.Accuracy,
		IndoorX:        data.IndoorX,
		IndoorY:        data.IndoorY,
		FloorLevel:     data.FloorLevel,
		IsIndoor:       data.IsIndoor,
		CurrentShopID:  data.CurrentShopID,
		CurrentZoneID:  data.CurrentZoneID,
		BatteryLevel:   data.BatteryLevel,
		SignalStrength: data.SignalStrength,
		Timestamp:      data.Timestamp,
	}
}

// fromUserLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromUserLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		MarketID:       data.MarketID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Altitude:       data.Altitude,
		Accuracy:       data.AccuracyMeters,
		IndoorX:        data.IndoorX,
		IndoorY:        data.IndoorY,
		FloorLevel:     data.FloorLevel,
		IsIndoor:       data.IsIndoor,
		CurrentShopID:  data.CurrentShopID,
		CurrentZoneID:  data.CurrentZoneID,
		BatteryLevel:   data.BatteryLevel,
		SignalStrength: data.SignalStrength,
		Timestamp:      data.Timestamp,
	}
}
