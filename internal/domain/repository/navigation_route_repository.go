package repository

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRouteNotFound is returned when no stored route matches.
var ErrRouteNotFound = errors.New("navigation route not found")

// NavigationRouteRepository defines the read operations on stored routes.
type NavigationRouteRepository interface {
	// FindGenericRouteForShop returns the oldest generic route ending at the shop.
	FindGenericRouteForShop(ctx context.Context, shopID uuid.UUID) (*entity.NavigationRoute, error)
}
