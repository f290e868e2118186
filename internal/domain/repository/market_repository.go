// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMarketNotFound is returned when a market does not exist.
var ErrMarketNotFound = errors.New("market not found")

// MarketRepository defines the read operations navigation needs on markets.
type MarketRepository interface {
	// FindMarketByID retrieves a market by its unique ID.
	FindMarketByID(ctx context.Context, id uuid.UUID) (*entity.Market, error)

	// ListMarkets returns every market ordered by name, used by nearest-market scans.
	ListMarkets(ctx context.Context) ([]*entity.Market, error)
}
