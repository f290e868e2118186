package impl

import (
	"cmp"
	"context"
	"math"
	"slices"

	"marketnav/config"
	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/repository"
	"marketnav/internal/errors"
	"marketnav/internal/geo"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
)

type shopLocatorService struct {
	shopRepo   repository.ShopRepository
	marketRepo repository.MarketRepository
	settings   navigationSettings
}

// NewShopLocatorService creates a new shop locator service instance
func NewShopLocatorService(
	shopRepo repository.ShopRepository,
	marketRepo repository.MarketRepository,
	cfg *config.Config,
) usecase.ShopLocatorUsecase {
	return &shopLocatorService{
		shopRepo:   shopRepo,
		marketRepo: marketRepo,
		settings:   newNavigationSettings(cfg),
	}
}

type shopDistance struct {
	shop     *entity.Shop
	distance float64
}

// FindNearby returns discoverable shops within radiusMeters, nearest first.
// Shops come back ordered by shop number, so the stable sort breaks distance ties by number.
func (s *shopLocatorService) FindNearby(ctx context.Context, lat, lon float64, marketID uuid.UUID, radiusMeters float64) ([]usecase.NearbyShop, error) {
	shops, err := s.shopRepo.FindDiscoverableShopsByMarket(ctx, marketID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops by market")
	}
	if len(shops) == 0 {
		return []usecase.NearbyShop{}, nil
	}

	grid := geo.NewShopGrid(s.settings.gridResolution, shops)

	matches := make([]shopDistance, 0)
	for _, shop := range grid.Candidates(lat, lon, radiusMeters) {
		d := geo.Distance(lat, lon, shop.Latitude, shop.Longitude)
		if d <= radiusMeters {
			matches = append(matches, shopDistance{shop: shop, distance: d})
		}
	}

	slices.SortStableFunc(matches, func(a, b shopDistance) int {
		return cmp.Compare(a.distance, b.distance)
	})

	result := make([]usecase.NearbyShop, 0, len(matches))
	for _, m := range matches {
		result = append(result, usecase.NearbyShop{
			Shop:           m.shop,
			DistanceMeters: geo.Round(m.distance, 2),
		})
	}

	return result, nil
}

// NearestMarket scans every market and keeps the closest one within the cutoff
func (s *shopLocatorService) NearestMarket(ctx context.Context, lat, lon, maxDistanceKm float64) (*entity.Market, float64, error) {
	if maxDistanceKm <= 0 {
		maxDistanceKm = s.settings.marketSearchRadiusKm
	}
	maxDistance := maxDistanceKm * 1000

	markets, err := s.marketRepo.ListMarkets(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list markets")
	}

	var nearest *entity.Market
	best := math.Inf(1)
	for _, market := range markets {
		d := geo.Distance(lat, lon, market.Latitude, market.Longitude)
		if d < best && d <= maxDistance {
			best = d
			nearest = market
		}
	}

	if nearest == nil {
		return nil, 0, nil
	}

	return nearest, best, nil
}
