package postgres

import (
	"context"
	"time"

	"marketnav/internal/domain/entity"
	domainerrors "marketnav/internal/domain/errors"
	"marketnav/internal/domain/repository"
	"marketnav/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// navigationSessionRepository implements the repository.NavigationSessionRepository interface.
type navigationSessionRepository struct {
	db *gorm.DB
}

// NewNavigationSessionRepository is the constructor for navigationSessionRepository.
func NewNavigationSessionRepository(db *gorm.DB) repository.NavigationSessionRepository {
	return &navigationSessionRepository{
		db: db,
	}
}

// CreateSession persists a new session.
func (repo *navigationSessionRepository) CreateSession(ctx context.Context, session *entity.NavigationSession) error {
	sessionM := fromNavigationSessionDomain(session)
	sessionM.Version = 1

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveSessionExists
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid navigation session")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create navigation session")
	}

	session.ID = sessionM.ID
	session.Version = sessionM.Version
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindSessionByID retrieves a session by its unique ID. Reads go to the primary so a
// read-modify-write cycle never sees a lagging replica.
func (repo *navigationSessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.NavigationSession, error) {
	var sessionM model.NavigationSessionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find navigation session by ID")
	}

	return toNavigationSessionDomain(&sessionM), nil
}

// FindActiveSessionByUser retrieves the active session of a user.
func (repo *navigationSessionRepository) FindActiveSessionByUser(ctx context.Context, userID uuid.UUID) (*entity.NavigationSession, error) {
	var sessionM model.NavigationSessionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.NavigationStatusActive)).
		Order("started_at DESC").
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active navigation session")
	}

	return toNavigationSessionDomain(&sessionM), nil
}

// UpdateSession saves the mutable fields if the stored version still matches, then bumps the version.
func (repo *navigationSessionRepository) UpdateSession(ctx context.Context, session *entity.NavigationSession) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.NavigationSessionModel{}).
		Where("id = ? AND version = ?", session.ID, session.Version).
		Updates(map[string]any{
			"status":                           string(session.Status),
			"current_step_index":               session.CurrentStepIndex,
			"distance_remaining_meters":        session.DistanceRemainingMeters,
			"estimated_time_remaining_seconds": session.EstimatedTimeRemainingSeconds,
			"completed_at":                     session.CompletedAt,
			"version":                          gorm.Expr("version + 1"),
			"updated_at":                       now,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrActiveSessionExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update navigation session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionVersionConflict
	}

	session.Version++
	session.UpdatedAt = now

	return nil
}

// CancelActiveSessionsByUser cancels any active session of the user.
func (repo *navigationSessionRepository) CancelActiveSessionsByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NavigationSessionModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.NavigationStatusActive)).
		Updates(map[string]any{
			"status":     string(entity.NavigationStatusCancelled),
			"version":    gorm.Expr("version + 1"),
			"updated_at": at,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to cancel active navigation sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toNavigationSessionDomain converts a GORM NavigationSessionModel to a domain NavigationSession entity.
func toNavigationSessionDomain(data *model.NavigationSessionModel) *entity.NavigationSession {
	if data == nil {
		return nil
	}

	return &entity.NavigationSession{
		ID:                            data.ID,
		UserID:                        data.UserID,
		MarketID:                      data.MarketID,
		DestinationShopID:             data.DestinationShopID,
		DestinationLatitude:           data.DestinationLatitude,
		DestinationLongitude:          data.DestinationLongitude,
		DestinationName:               data.DestinationName,
		SelectedRouteID:               data.SelectedRouteID,
		RouteCoordinates:              [][2]float64(data.RouteCoordinates),
		Status:                        entity.NavigationStatus(data.Status),
		StartLatitude:                 data.StartLatitude,
		StartLongitude:                data.StartLongitude,
		CurrentStepIndex:              data.CurrentStepIndex,
		DistanceRemainingMeters:       data.DistanceRemainingMeters,
		EstimatedTimeRemainingSeconds: data.EstimatedTimeRemainingSeconds,
		NavigationMode:                entity.NavigationMode(data.NavigationMode),
		UseIndoorNavigation:           data.UseIndoorNavigation,
		StartedAt:                     data.StartedAt,
		CompletedAt:                   data.CompletedAt,
		Version:                       data.Version,
		UpdatedAt:                     data.UpdatedAt,
	}
}

// fromNavigationSessionDomain converts a domain NavigationSession entity to a GORM NavigationSessionModel.
func fromNavigationSessionDomain(data *entity.NavigationSession) *model.NavigationSessionModel {
	if data == nil {
		return nil
	}

	return &model.NavigationSessionModel{
		ID:                            data.ID,
		UserID:                        data.UserID,
		MarketID:                      data.MarketID,
		DestinationShopID:             data.DestinationShopID,
		DestinationLatitude:           data.DestinationLatitude,
		DestinationLongitude:          data.DestinationLongitude,
		DestinationName:               data.DestinationName,
		SelectedRouteID:               data.SelectedRouteID,
		RouteCoordinates:              data.RouteCoordinates,
		Status:                        string(data.Status),
		StartLatitude:                 data.StartLatitude,
		StartLongitude:                data.StartLongitude,
		CurrentStepIndex:              data.CurrentStepIndex,
		DistanceRemainingMeters:       data.DistanceRemainingMeters,
		EstimatedTimeRemainingSeconds: data.EstimatedTimeRemainingSeconds,
		NavigationMode:                string(data.NavigationMode),
		UseIndoorNavigation:           data.UseIndoorNavigation,
		StartedAt:                     data.StartedAt,
		CompletedAt:                   data.CompletedAt,
		Version:                       data.Version,
		UpdatedAt:                     data.UpdatedAt,
	}
}
