package impl

import (
	"context"
	"fmt"

	"marketnav/config"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/errors"
	"marketnav/internal/geo"
	"marketnav/internal/usecase"
)

type routeService struct {
	shopRepo   repository.ShopRepository
	marketRepo repository.MarketRepository
	routeRepo  repository.NavigationRouteRepository
	geofence   usecase.GeofenceUsecase
	settings   navigationSettings
}

// NewRouteService creates a new route service instance
func NewRouteService(
	shopRepo repository.ShopRepository,
	marketRepo repository.MarketRepository,
	routeRepo repository.NavigationRouteRepository,
	geofence usecase.GeofenceUsecase,
	cfg *config.Config,
) usecase.RouteUsecase {
	return &routeService{
		shopRepo:   shopRepo,
		marketRepo: marketRepo,
		routeRepo:  routeRepo,
		geofence:   geofence,
		settings:   newNavigationSettings(cfg),
	}
}

// RouteToShop prefers the shop's generic stored route and falls back to a straight line.
// A reused route keeps its stored geometry and instructions, but the distance is always
// measured fresh from the caller's start; the stored distance and time are not used.
func (s *routeService) RouteToShop(ctx context.Context, input *usecase.RouteToShopInput) (*usecase.Route, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, input.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	stored, err := s.routeRepo.FindGenericRouteForShop(ctx, shop.ID)
	switch {
	case err == nil:
		return s.reuseRoute(input, shop, stored), nil
	case errors.Is(err, repository.ErrRouteNotFound):
		return s.straightRoute(ctx, input, shop)
	default:
		return nil, errors.Wrap(err, "failed to find generic route")
	}
}

func shopDestination(shop *entity.Shop) usecase.RouteDestination {
	shopID := shop.ID

	return usecase.RouteDestination{
		ShopID:     &shopID,
		Name:       shop.Name,
		Latitude:   shop.Latitude,
		Longitude:  shop.Longitude,
		ShopNumber: shop.ShopNumber,
		FloorLevel: shop.FloorLevel,
	}
}

func (s *routeService) reuseRoute(input *usecase.RouteToShopInput, shop *entity.Shop, stored *entity.NavigationRoute) *usecase.Route {
	distance := geo.Distance(input.StartLatitude, input.StartLongitude, shop.Latitude, shop.Longitude)
	routeID := stored.ID
	marketID := shop.MarketID

	return &usecase.Route{
		RouteID:              &routeID,
		Destination:          shopDestination(shop),
		DistanceMeters:       distance,
		EstimatedTimeSeconds: etaSeconds(distance, s.settings.walkingSpeedMps),
		Coordinates:          stored.Coordinates,
		IndoorCoordinates:    stored.IndoorCoordinates,
		Instructions:         stored.Instructions,
		Landmarks:            stored.Landmarks,
		IsIndoorRoute:        stored.IsIndoorRoute,
		IsAccessible:         stored.IsAccessibleRoute,
		MarketID:             &marketID,
	}
}

func (s *routeService) straightRoute(ctx context.Context, input *usecase.RouteToShopInput, shop *entity.Shop) (*usecase.Route, error) {
	market, err := s.marketRepo.FindMarketByID(ctx, shop.MarketID)
	if err != nil && !errors.Is(err, repository.ErrMarketNotFound) {
		return nil, errors.Wrap(err, "failed to find market by ID")
	}

	distance := geo.Distance(input.StartLatitude, input.StartLongitude, shop.Latitude, shop.Longitude)
	marketID := shop.MarketID

	return &usecase.Route{
		Destination:          shopDestination(shop),
		DistanceMeters:       geo.Round(distance, 2),
		EstimatedTimeSeconds: etaSeconds(distance, s.settings.walkingSpeedMps),
		Coordinates: [][2]float64{
			{input.StartLongitude, input.StartLatitude},
			{shop.Longitude, shop.Latitude},
		},
		Instructions:  basicInstructions(input.StartLatitude, input.StartLongitude, shop.Latitude, shop.Longitude, shop.Name),
		IsIndoorRoute: s.geofence.IsIndoor(input.StartLatitude, input.StartLongitude, market),
		IsAccessible:  shop.IsAccessible,
		MarketID:      &marketID,
	}, nil
}

// basicInstructions is a single heading step followed by arrival
func basicInstructions(startLat, startLon, endLat, endLon float64, name string) []entity.RouteInstruction {
	bearing := geo.Bearing(startLat, startLon, endLat, endLon)
	direction := geo.BearingToCardinal(bearing)
	distance := geo.Distance(startLat, startLon, endLat, endLon)
	arrivalBearing := bearing

	return []entity.RouteInstruction{
		{
			Step:           1,
			Instruction:    fmt.Sprintf("Head %s toward %s", direction, name),
			DistanceMeters: geo.Round(distance, 2),
			Bearing:        &bearing,
			Coordinates:    []float64{startLon, startLat},
		},
		{
			Step:           2,
			Instruction:    fmt.Sprintf("Arrive at %s", name),
			DistanceMeters: 0,
			Bearing:        &arrivalBearing,
			Coordinates:    []float64{endLon, endLat},
		},
	}
}
