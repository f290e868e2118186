package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketnav/config"
	deliverycontext "marketnav/internal/delivery/context"
	"marketnav/internal/domain/constants"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/service"
	"marketnav/internal/usecase"
)

const (
	defaultRouteProvider = constants.RouteProviderGoogle
	defaultRouteCacheTTL = 10 * time.Minute
)

type externalRouteService struct {
	providers map[string]service.RouteProvider
	cache     service.RouteCache
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewExternalRouteService creates a new external route service instance
func NewExternalRouteService(
	providers []service.RouteProvider,
	cache service.RouteCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ExternalRouteUsecase {
	byName := make(map[string]service.RouteProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	ttl := defaultRouteCacheTTL
	if cfg != nil && cfg.ExternalRoutes != nil && cfg.ExternalRoutes.CacheTTL > 0 {
		ttl = cfg.ExternalRoutes.CacheTTL
	}

	return &externalRouteService{
		providers: byName,
		cache:     cache,
		cacheTTL:  ttl,
		logger:    logger,
	}
}

// Directions asks the named provider for a route. Any provider failure surfaces as ErrExternalRouteUnavailable.
func (s *externalRouteService) Directions(ctx context.Context, input *usecase.ExternalRouteInput) (*service.ExternalRoute, error) {
	name := input.Provider
	if name == "" {
		name = defaultRouteProvider
	}
	provider, ok := s.providers[name]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown route provider %q", name))
	}

	mode := input.NavigationMode
	if mode == "" {
		mode = entity.NavigationModeWalking
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	key := routeCacheKey(name, mode, input)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "Route cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	route, err := provider.Directions(ctx, service.DirectionsRequest{
		StartLatitude:  input.StartLatitude,
		StartLongitude: input.StartLongitude,
		EndLatitude:    input.EndLatitude,
		EndLongitude:   input.EndLongitude,
		Mode:           mode,
	})
	if err != nil {
		logger.WarnContext(ctx, "External route provider failed",
			slog.String("provider", name),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrExternalRouteUnavailable.WithDetails(err.Error())
	}

	if err := s.cache.Set(ctx, key, route, s.cacheTTL); err != nil {
		logger.WarnContext(ctx, "Route cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return route, nil
}

// routeCacheKey rounds endpoints to about 11 m so nearby requests share an entry
func routeCacheKey(provider string, mode entity.NavigationMode, input *usecase.ExternalRouteInput) string {
	return fmt.Sprintf("%s:%s:%.4f,%.4f:%.4f,%.4f",
		provider, mode,
		input.StartLatitude, input.StartLongitude,
		input.EndLatitude, input.EndLongitude,
	)
}
