package main

import (
	"context"
	"log/slog"
	"os"

	"marketnav/config"
	"marketnav/internal/delivery"
	"marketnav/internal/delivery/api"
	"marketnav/internal/delivery/api/middleware"
	"marketnav/internal/delivery/api/router/handler"
	"marketnav/internal/infra/auth"
	"marketnav/internal/infra/cache"
	"marketnav/internal/infra/directions"
	logs "marketnav/internal/infra/log"
	"marketnav/internal/infra/persistence/postgres"
	"marketnav/internal/infra/pubsub"
	"marketnav/internal/infra/qrcode"
	"marketnav/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		directions.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMarketRepository,
			postgres.NewShopRepository,
			postgres.NewGeofenceZoneRepository,
			postgres.NewNavigationRouteRepository,
			postgres.NewNavigationSessionRepository,
			postgres.NewUserLocationRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeofenceService,
			impl.NewShopLocatorService,
			impl.NewRouteService,
			impl.NewIndoorRouterService,
			impl.NewLocationTrackerService,
			impl.NewNavigationService,
			impl.NewExternalRouteService,
			impl.NewMarketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewShopHandler,
			handler.NewNavigationHandler,
			handler.NewGeofenceHandler,
			handler.NewMarketHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
