package usecase

import (
	"context"

	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/service"
)

// ExternalRouteInput represents a request for directions from a third-party provider
type ExternalRouteInput struct {
	Provider       string                `json:"provider"`
	StartLatitude  float64               `json:"start_latitude"`
	StartLongitude float64               `json:"start_longitude"`
	EndLatitude    float64               `json:"end_latitude"`
	EndLongitude   float64               `json:"end_longitude"`
	NavigationMode entity.NavigationMode `json:"navigation_mode"`
}

// ExternalRouteUsecase fetches routes from external mapping providers
type ExternalRouteUsecase interface {
	// Directions returns a provider route, served from cache when possible
	Directions(ctx context.Context, input *ExternalRouteInput) (*service.ExternalRoute, error)
}
