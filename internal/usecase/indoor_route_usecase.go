package usecase

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// IndoorRouteInput represents a request for a route on a market's indoor map
type IndoorRouteInput struct {
	StartX   float64   `json:"start_x"`
	StartY   float64   `json:"start_y"`
	EndX     float64   `json:"end_x"`
	EndY     float64   `json:"end_y"`
	Floor    int       `json:"floor"`
	MarketID uuid.UUID `json:"market_id"`
}

// IndoorRoute is a planar route on one floor
type IndoorRoute struct {
	RoutePoints          []entity.IndoorPoint      `json:"route_points"`
	DistanceMeters       float64                   `json:"distance_meters"`
	EstimatedTimeSeconds int                       `json:"estimated_time_seconds"`
	Floor                int                       `json:"floor"`
	Instructions         []entity.RouteInstruction `json:"instructions"`
}

// IndoorRouteUsecase derives indoor routes
type IndoorRouteUsecase interface {
	// IndoorRoute builds a straight route between two indoor points of a market with indoor mapping
	IndoorRoute(ctx context.Context, input *IndoorRouteInput) (*IndoorRoute, error)
}
