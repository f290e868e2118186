package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketnav/config"
	deliverycontext "marketnav/internal/delivery/context"
	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/domain/service"
	"marketnav/internal/errors"
	"marketnav/internal/geo"
	"marketnav/internal/usecase"

	"github.com/google/uuid"
)

type navigationService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.NavigationSessionRepository
	routes      usecase.RouteUsecase
	shopLocator usecase.ShopLocatorUsecase
	publisher   service.EventPublisher
	settings    navigationSettings
	logger      *slog.Logger
}

// NewNavigationService creates a new navigation session service instance
func NewNavigationService(
	txManager repository.TransactionManager,
	sessionRepo repository.NavigationSessionRepository,
	routes usecase.RouteUsecase,
	shopLocator usecase.ShopLocatorUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NavigationUsecase {
	return &navigationService{
		txManager:   txManager,
		sessionRepo: sessionRepo,
		routes:      routes,
		shopLocator: shopLocator,
		publisher:   publisher,
		settings:    newNavigationSettings(cfg),
		logger:      logger,
	}
}

// Start creates an active session. A previous active session of the user is cancelled in the same transaction.
func (s *navigationService) Start(ctx context.Context, userID uuid.UUID, input *usecase.StartNavigationInput) (*usecase.StartedNavigation, error) {
	hasShop := input.DestinationShopID != nil
	hasPoint := input.DestinationLatitude != nil && input.DestinationLongitude != nil
	if hasShop == hasPoint {
		return nil, domainerrors.ErrInvalidDestination
	}

	mode := input.NavigationMode
	if mode == "" {
		mode = entity.NavigationModeWalking
	}

	var (
		route *usecase.Route
		err   error
	)
	if hasShop {
		route, err = s.routes.RouteToShop(ctx, &usecase.RouteToShopInput{
			StartLatitude:       input.StartLatitude,
			StartLongitude:      input.StartLongitude,
			ShopID:              *input.DestinationShopID,
			NavigationMode:      mode,
			UseIndoorNavigation: input.UseIndoorNavigation,
		})
	} else {
		route, err = s.pointRoute(ctx, input.StartLatitude, input.StartLongitude, *input.DestinationLatitude, *input.DestinationLongitude)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	destLat := route.Destination.Latitude
	destLon := route.Destination.Longitude
	remaining := route.DistanceMeters
	eta := route.EstimatedTimeSeconds

	session := &entity.NavigationSession{
		ID:                            uuid.New(),
		UserID:                        userID,
		MarketID:                      route.MarketID,
		DestinationShopID:             route.Destination.ShopID,
		DestinationLatitude:           &destLat,
		DestinationLongitude:          &destLon,
		DestinationName:               route.Destination.Name,
		SelectedRouteID:               route.RouteID,
		RouteCoordinates:              route.Coordinates,
		Status:                        entity.NavigationStatusActive,
		StartLatitude:                 input.StartLatitude,
		StartLongitude:                input.StartLongitude,
		DistanceRemainingMeters:       &remaining,
		EstimatedTimeRemainingSeconds: &eta,
		NavigationMode:                mode,
		UseIndoorNavigation:           input.UseIndoorNavigation,
		StartedAt:                     now,
		UpdatedAt:                     now,
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		sessionRepo := txRepoFactory.NewNavigationSessionRepository()

		superseded, err := sessionRepo.CancelActiveSessionsByUser(ctx, userID, now)
		if err != nil {
			return errors.Wrap(err, "failed to cancel active sessions")
		}
		if superseded > 0 {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "Superseded active navigation session",
				slog.String("user_id", userID.String()),
				slog.Int64("cancelled", superseded),
			)
		}

		if err := sessionRepo.CreateSession(ctx, session); err != nil {
			if errors.Is(err, repository.ErrActiveSessionExists) {
				return domainerrors.ErrActiveSessionExists
			}

			return errors.Wrap(err, "failed to create navigation session")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, service.EventNavigationStarted, session)

	return &usecase.StartedNavigation{Session: session, Route: route}, nil
}

// pointRoute is the straight route to a bare coordinate. The owning market is the one nearest the destination.
func (s *navigationService) pointRoute(ctx context.Context, startLat, startLon, destLat, destLon float64) (*usecase.Route, error) {
	market, _, err := s.shopLocator.NearestMarket(ctx, destLat, destLon, s.settings.marketSearchRadiusKm)
	if err != nil {
		return nil, err
	}

	distance := geo.Distance(startLat, startLon, destLat, destLon)
	route := &usecase.Route{
		Destination: usecase.RouteDestination{
			Name:      fmt.Sprintf("Location (%v, %v)", destLat, destLon),
			Latitude:  destLat,
			Longitude: destLon,
		},
		DistanceMeters:       distance,
		EstimatedTimeSeconds: etaSeconds(distance, s.settings.walkingSpeedMps),
		Coordinates: [][2]float64{
			{startLon, startLat},
			{destLon, destLat},
		},
		IsAccessible: true,
	}
	if market != nil {
		marketID := market.ID
		route.MarketID = &marketID
	}

	return route, nil
}

// UpdateStatus records progress on a session of the user under an optimistic version check
func (s *navigationService) UpdateStatus(ctx context.Context, userID uuid.UUID, input *usecase.UpdateNavigationStatusInput) (*entity.NavigationSession, error) {
	status := input.Status
	if status == "" {
		status = entity.NavigationStatusActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	var (
		session  *entity.NavigationSession
		previous entity.NavigationStatus
	)
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		sessionRepo := txRepoFactory.NewNavigationSessionRepository()

		found, err := sessionRepo.FindSessionByID(ctx, input.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrSessionNotFound
			}

			return errors.Wrap(err, "failed to find navigation session")
		}
		if found.UserID != userID {
			return domainerrors.ErrSessionNotFound
		}
		if found.Status.IsTerminal() {
			return domainerrors.ErrSessionTerminal
		}
		if !found.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition
		}
		if status == entity.NavigationStatusActive && found.Status != entity.NavigationStatusActive {
			if err := ensureNoOtherActiveSession(ctx, sessionRepo, found); err != nil {
				return err
			}
		}

		previous = found.Status
		now := time.Now().UTC()
		found.CurrentStepIndex = input.CurrentStepIndex
		found.Status = status
		found.UpdatedAt = now

		if found.HasDestinationPoint() {
			remaining := geo.Distance(input.CurrentLatitude, input.CurrentLongitude, *found.DestinationLatitude, *found.DestinationLongitude)
			eta := etaSeconds(remaining, s.settings.walkingSpeedMps)
			found.DistanceRemainingMeters = &remaining
			found.EstimatedTimeRemainingSeconds = &eta
		}

		if status == entity.NavigationStatusCompleted {
			found.CompletedAt = &now
		} else {
			found.CompletedAt = nil
		}

		if err := sessionRepo.UpdateSession(ctx, found); err != nil {
			switch {
			case errors.Is(err, repository.ErrSessionVersionConflict):
				return domainerrors.ErrSessionConflict
			case errors.Is(err, repository.ErrActiveSessionExists):
				return domainerrors.ErrActiveSessionExists
			default:
				return errors.Wrap(err, "failed to update navigation session")
			}
		}

		session = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != session.Status {
		s.publish(ctx, statusEventType(session.Status), session)
	}

	return session, nil
}

// ensureNoOtherActiveSession rejects a resume while the user navigates elsewhere
func ensureNoOtherActiveSession(ctx context.Context, sessionRepo repository.NavigationSessionRepository, session *entity.NavigationSession) error {
	active, err := sessionRepo.FindActiveSessionByUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find active navigation session")
	}
	if active.ID != session.ID {
		return domainerrors.ErrActiveSessionExists.WithDetails(fmt.Sprintf("session %s is active", active.ID))
	}

	return nil
}

func statusEventType(status entity.NavigationStatus) string {
	switch status {
	case entity.NavigationStatusPaused:
		return service.EventNavigationPaused
	case entity.NavigationStatusCompleted:
		return service.EventNavigationCompleted
	case entity.NavigationStatusCancelled:
		return service.EventNavigationCancelled
	default:
		return service.EventNavigationResumed
	}
}

// ActiveSession returns the user's active session
func (s *navigationService) ActiveSession(ctx context.Context, userID uuid.UUID) (*entity.NavigationSession, error) {
	session, err := s.sessionRepo.FindActiveSessionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrNoActiveSession
		}

		return nil, errors.Wrap(err, "failed to find active navigation session")
	}

	return session, nil
}

// GetSession returns a session of the user; sessions of other users look missing
func (s *navigationService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.NavigationSession, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find navigation session")
	}
	if session.UserID != userID {
		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

// publish runs after commit; a failed publish never undoes the state change
func (s *navigationService) publish(ctx context.Context, eventType string, session *entity.NavigationSession) {
	event := &service.NavigationEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventType:       eventType,
		SessionID:       session.ID.String(),
		UserID:          session.UserID.String(),
		DestinationName: session.DestinationName,
		Status:          string(session.Status),
		NavigationMode:  string(session.NavigationMode),
		OccurredAt:      session.UpdatedAt,
	}
	if session.MarketID != nil {
		event.MarketID = session.MarketID.String()
	}
	if session.DestinationShopID != nil {
		event.DestinationShopID = session.DestinationShopID.String()
	}

	if err := s.publisher.PublishNavigationEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to publish navigation event",
			slog.String("event_type", eventType),
			slog.String("session_id", event.SessionID),
			slog.Any("error", err),
		)
	}
}
