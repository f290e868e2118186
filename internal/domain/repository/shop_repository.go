package repository

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrShopNotFound is returned when a shop does not exist.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the read operations navigation needs on shops.
type ShopRepository interface {
	// FindShopByID retrieves a shop by its unique ID regardless of its visibility flags.
	FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindDiscoverableShopsByMarket returns the active and verified shops of a market ordered by shop number.
	FindDiscoverableShopsByMarket(ctx context.Context, marketID uuid.UUID) ([]*entity.Shop, error)

	// CountActiveShopsByMarket counts active shops of a market, verified or not.
	CountActiveShopsByMarket(ctx context.Context, marketID uuid.UUID) (int64, error)
}
