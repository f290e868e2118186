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

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// FindShopByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// FindDiscoverableShopsByMarket returns the active and verified shops of a market.
func (repo *shopRepository) FindDiscoverableShopsByMarket(ctx context.Context, marketID uuid.UUID) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("market_id = ? AND is_active = ? AND is_verified = ?", marketID, true, true).
		Order("shop_number ASC NULLS LAST").
		Order("id ASC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shops by market")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// CountActiveShopsByMarket counts active shops of a market.
func (repo *shopRepository) CountActiveShopsByMarket(ctx context.Context, marketID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("market_id = ? AND is_active = ?", marketID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count shops by market")
	}

	return count, nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	floor := data.FloorLevel
	if floor == "" {
		floor = entity.DefaultFloorLevel
	}

	return &entity.Shop{
		ID:                  data.ID,
		MarketID:            data.MarketID,
		SellerID:            data.SellerID,
		Name:                data.Name,
		Description:         derefString(data.Description),
		ShopNumber:          derefString(data.ShopNumber),
		FloorLevel:          floor,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Altitude:            data.Altitude,
		IndoorX:             data.IndoorX,
		IndoorY:             data.IndoorY,
		IndoorFloor:         data.IndoorFloor,
		EntranceLatitude:    data.EntranceLatitude,
		EntranceLongitude:   data.EntranceLongitude,
		IsAccessible:        data.IsAccessible,
		HasWheelchairAccess: data.HasWheelchairAccess,
		NavigationLandmarks: []string(data.NavigationLandmarks),
		IsActive:            data.IsActive,
		IsVerified:          data.IsVerified,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
