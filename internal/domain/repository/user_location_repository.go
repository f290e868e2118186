package repository

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// UserLocationRepository stores location samples. Samples are append-only.
type UserLocationRepository interface {
	// CreateLocation persists a new location sample.
	CreateLocation(ctx context.Context, location *entity.UserLocation) error

	// FindRecentLocationsByUser returns up to limit samples of a user, newest first.
	FindRecentLocationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.UserLocation, error)
}
