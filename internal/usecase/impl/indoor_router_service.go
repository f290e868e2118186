package impl

import (
	"context"
	"fmt"
	"strconv"

	"marketnav/config"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/errors"
	"marketnav/internal/geo"
	"marketnav/internal/usecase"
)

type indoorRouterService struct {
	marketRepo repository.MarketRepository
	settings   navigationSettings
}

// NewIndoorRouterService creates a new indoor router service instance
func NewIndoorRouterService(marketRepo repository.MarketRepository, cfg *config.Config) usecase.IndoorRouteUsecase {
	return &indoorRouterService{
		marketRepo: marketRepo,
		settings:   newNavigationSettings(cfg),
	}
}

// IndoorRoute builds a two point route on one floor of a market with indoor mapping
func (s *indoorRouterService) IndoorRoute(ctx context.Context, input *usecase.IndoorRouteInput) (*usecase.IndoorRoute, error) {
	market, err := s.marketRepo.FindMarketByID(ctx, input.MarketID)
	if err != nil {
		if errors.Is(err, repository.ErrMarketNotFound) {
			return nil, domainerrors.ErrMarketNotFound
		}

		return nil, errors.Wrap(err, "failed to find market by ID")
	}
	if !market.IndoorMapEnabled {
		return nil, domainerrors.ErrIndoorNavigationUnavailable
	}

	start := entity.IndoorPoint{X: input.StartX, Y: input.StartY, Floor: input.Floor}
	end := entity.IndoorPoint{X: input.EndX, Y: input.EndY, Floor: input.Floor}
	distance := geo.Euclidean(start.X, start.Y, end.X, end.Y)
	direction := geo.IndoorDirection(end.X-start.X, end.Y-start.Y)

	return &usecase.IndoorRoute{
		RoutePoints:          []entity.IndoorPoint{start, end},
		DistanceMeters:       geo.Round(distance, 2),
		EstimatedTimeSeconds: etaSeconds(distance, s.settings.indoorSpeedMps),
		Floor:                input.Floor,
		Instructions: []entity.RouteInstruction{
			{
				Step:              1,
				Instruction:       fmt.Sprintf("Walk %s for %s meters", direction, formatMeters(geo.Round(distance, 1))),
				DistanceMeters:    geo.Round(distance, 2),
				IndoorCoordinates: &start,
			},
			{
				Step:              2,
				Instruction:       "You have arrived at your destination",
				DistanceMeters:    0,
				IndoorCoordinates: &end,
			},
		},
	}, nil
}

// formatMeters prints at least one decimal, so 10 reads "10.0"
func formatMeters(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == float64(int64(v)) {
		s = strconv.FormatFloat(v, 'f', 1, 64)
	}

	return s
}
