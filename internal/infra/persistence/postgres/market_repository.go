// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/repository"
	"marketnav/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// marketRepository implements the repository.MarketRepository interface.
type marketRepository struct {
	db *gorm.DB
}

// NewMarketRepository is the constructor for marketRepository.
func NewMarketRepository(db *gorm.DB) repository.MarketRepository {
	return &marketRepository{
		db: db,
	}
}

// FindMarketByID retrieves a market by its unique ID.
func (repo *marketRepository) FindMarketByID(ctx context.Context, id uuid.UUID) (*entity.Market, error) {
	var marketM model.MarketModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&marketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMarketNotFound
		}

		return nil, errors.Wrap(err, "failed to find market by ID")
	}

	return toMarketDomain(&marketM), nil
}

// ListMarkets returns every market ordered by name.
func (repo *marketRepository) ListMarkets(ctx context.Context) ([]*entity.Market, error) {
	var marketModels []*model.MarketModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Find(&marketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list markets")
	}

	markets := make([]*entity.Market, 0, len(marketModels))
	for _, marketM := range marketModels {
		markets = append(markets, toMarketDomain(marketM))
	}

	return markets, nil
}

// --- Mapper Functions ---

// toMarketDomain converts a GORM MarketModel to a domain Market entity.
func toMarketDomain(data *model.MarketModel) *entity.Market {
	if data == nil {
		return nil
	}

	return &entity.Market{
		ID:                       data.ID,
		Name:                     data.Name,
		Description:              derefString(data.Description),
		Address:                  data.Address,
		City:                     data.City,
		State:                    data.State,
		Country:                  data.Country,
		Latitude:                 data.Latitude,
		Longitude:                data.Longitude,
		OpeningTime:              clockString(data.OpeningTime),
		ClosingTime:              clockString(data.ClosingTime),
		Boundary:                 toRing(data.BoundaryCoordinates),
		IndoorMapEnabled:         data.IndoorMapEnabled,
		OutdoorNavigationEnabled: data.OutdoorNavigationEnabled,
		HasMapData:               len(data.MapData) > 0 && string(data.MapData) != "null",
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// toRing converts stored [lon, lat] pairs to an orb ring. Empty input yields nil.
func toRing(coords [][2]float64) orb.Ring {
	if len(coords) == 0 {
		return nil
	}

	ring := make(orb.Ring, 0, len(coords))
	for _, c := range coords {
		ring = append(ring, orb.Point(c))
	}

	return ring
}

// clockString trims a postgres TIME value such as "08:00:00" to "08:00".
func clockString(v *string) string {
	if v == nil {
		return ""
	}
	if t, err := time.Parse(time.TimeOnly, *v); err == nil {
		return t.Format("15:04")
	}

	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}
