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

// navigationRouteRepository implements the repository.NavigationRouteRepository interface.
type navigationRouteRepository struct {
	db *gorm.DB
}

// NewNavigationRouteRepository is the constructor for navigationRouteRepository.
func NewNavigationRouteRepository(db *gorm.DB) repository.NavigationRouteRepository {
	return &navigationRouteRepository{
		db: db,
	}
}

// FindGenericRouteForShop returns the oldest route ending at the shop that has no fixed start point.
func (repo *navigationRouteRepository) FindGenericRouteForShop(ctx context.Context, shopID uuid.UUID) (*entity.NavigationRoute, error) {
	var routeM model.NavigationRouteModel

	if err := repo.db.WithContext(ctx).
		Where("end_shop_id = ? AND start_latitude IS NULL AND start_longitude IS NULL", shopID).
		Order("created_at ASC").
		Order("id ASC").
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find generic route for shop")
	}

	return toNavigationRouteDomain(&routeM), nil
}

// --- Mapper Functions ---

// toNavigationRouteDomain converts a GORM NavigationRouteModel to a domain NavigationRoute entity.
func toNavigationRouteDomain(data *model.NavigationRouteModel) *entity.NavigationRoute {
	if data == nil {
		return nil
	}

	return &entity.NavigationRoute{
		ID:                       data.ID,
		MarketID:                 data.MarketID,
		StartShopID:              data.StartShopID,
		EndShopID:                data.EndShopID,
		StartLatitude:            data.StartLatitude,
		StartLongitude:           data.StartLongitude,
		EndLatitude:              data.EndLatitude,
		EndLongitude:             data.EndLongitude,
		Coordinates:              [][2]float64(data.RouteCoordinates),
		IndoorCoordinates:        []entity.IndoorPoint(data.IndoorRouteCoordinates),
		DistanceMeters:           data.DistanceMeters,
		EstimatedWalkTimeSeconds: data.EstimatedWalkTimeSeconds,
		IsIndoorRoute:            data.IsIndoorRoute,
		IsAccessibleRoute:        data.IsAccessibleRoute,
		Instructions:             []entity.RouteInstruction(data.TurnByTurnInstructions),
		Landmarks:                []string(data.LandmarksOnRoute),
		CreatedAt:                data.CreatedAt,
	}
}
