package impl

import (
	"context"
	"log/slog"
	"time"

	"marketnav/config"
	deliverycontext "marketnav/internal/delivery/context"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/errors"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultLocationHistory = 50
	maxLocationHistory     = 500
)

type locationTrackerService struct {
	userRepo     repository.UserRepository
	marketRepo   repository.MarketRepository
	locationRepo repository.UserLocationRepository
	geofence     usecase.GeofenceUsecase
	shopLocator  usecase.ShopLocatorUsecase
	settings     navigationSettings
	logger       *slog.Logger
}

// NewLocationTrackerService creates a new location tracker service instance
func NewLocationTrackerService(
	userRepo repository.UserRepository,
	marketRepo repository.MarketRepository,
	locationRepo repository.UserLocationRepository,
	geofence usecase.GeofenceUsecase,
	shopLocator usecase.ShopLocatorUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationTrackerUsecase {
	return &locationTrackerService{
		userRepo:     userRepo,
		marketRepo:   marketRepo,
		locationRepo: locationRepo,
		geofence:     geofence,
		shopLocator:  shopLocator,
		settings:     newNavigationSettings(cfg),
		logger:       logger,
	}
}

// ReportLocation resolves the market, zone and shop for a sample and appends it to the user's history.
// Reference data is only read.
func (s *locationTrackerService) ReportLocation(ctx context.Context, userID uuid.UUID, input *usecase.ReportLocationInput) (*usecase.LocationReport, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	market, err := s.resolveMarket(ctx, input)
	if err != nil {
		return nil, err
	}

	location := &entity.UserLocation{
		ID:             uuid.New(),
		UserID:         userID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Altitude:       input.Altitude,
		AccuracyMeters: input.AccuracyMeters,
		IndoorX:        input.IndoorX,
		IndoorY:        input.IndoorY,
		FloorLevel:     input.FloorLevel,
		BatteryLevel:   input.BatteryLevel,
		SignalStrength: input.SignalStrength,
		Timestamp:      time.Now().UTC(),
	}
	report := &usecase.LocationReport{Location: location}

	if market != nil {
		marketID := market.ID
		location.MarketID = &marketID
		location.IsIndoor = s.geofence.IsIndoor(input.Latitude, input.Longitude, market)
		report.MarketName = market.Name

		zone, err := s.geofence.DetectZone(ctx, input.Latitude, input.Longitude, market.ID)
		if err != nil {
			return nil, err
		}
		if zone != nil {
			zoneID := zone.ID
			location.CurrentZoneID = &zoneID
			report.CurrentZoneName = zone.Name
		}

		nearby, err := s.shopLocator.FindNearby(ctx, input.Latitude, input.Longitude, market.ID, s.settings.currentShopRadiusMeters)
		if err != nil {
			return nil, err
		}
		if len(nearby) > 0 {
			shopID := nearby[0].Shop.ID
			location.CurrentShopID = &shopID
			report.CurrentShopName = nearby[0].Shop.Name
		}
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create location")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).DebugContext(ctx, "Location recorded",
		slog.String("user_id", userID.String()),
		slog.Bool("in_market", market != nil),
		slog.Bool("is_indoor", location.IsIndoor),
	)

	return report, nil
}

// resolveMarket honors an explicit market id, otherwise detects the nearest market unless disabled
func (s *locationTrackerService) resolveMarket(ctx context.Context, input *usecase.ReportLocationInput) (*entity.Market, error) {
	if input.MarketID != nil {
		market, err := s.marketRepo.FindMarketByID(ctx, *input.MarketID)
		if err != nil {
			if errors.Is(err, repository.ErrMarketNotFound) {
				return nil, domainerrors.ErrMarketNotFound
			}

			return nil, errors.Wrap(err, "failed to find market by ID")
		}

		return market, nil
	}

	if input.AutoDetectMarket != nil && !*input.AutoDetectMarket {
		return nil, nil
	}

	market, _, err := s.shopLocator.NearestMarket(ctx, input.Latitude, input.Longitude, s.settings.marketSearchRadiusKm)
	if err != nil {
		return nil, err
	}

	return market, nil
}

// RecentLocations returns the user's latest samples, newest first
func (s *locationTrackerService) RecentLocations(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.UserLocation, error) {
	if limit <= 0 {
		limit = defaultLocationHistory
	}
	limit = min(limit, maxLocationHistory)

	locations, err := s.locationRepo.FindRecentLocationsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent locations")
	}

	return locations, nil
}
