// Package localstore contains the concrete persistence layer over the
// key-value snapshot store. Each repository owns one well-known key and
// serializes whole snapshots, mirroring the storefront's original
// local-storage layout.
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"elegance/internal/domain/entity"
	"elegance/internal/domain/repository"
	"elegance/internal/errors"
	"elegance/internal/infra/kvstore"
)

// keyCart is the snapshot key holding the cart line items.
const keyCart = "cart"

// cartRepository implements repository.CartRepository over the kvstore.
type cartRepository struct {
	store  kvstore.Store
	logger *slog.Logger
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store kvstore.Store, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{store: store, logger: logger}
}

// Load reads the persisted line items. Absent or corrupt snapshots fall back
// to an empty cart: a damaged snapshot must never take the storefront down.
func (repo *cartRepository) Load(ctx context.Context) (*entity.Cart, error) {
	data, err := repo.store.Get(ctx, keyCart)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return &entity.Cart{}, nil
		}

		return nil, errors.Wrap(err, "failed to load cart snapshot")
	}

	var items []entity.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		repo.logger.Warn("Discarding corrupt cart snapshot", slog.Any("error", err))

		return &entity.Cart{}, nil
	}

	return &entity.Cart{Items: items}, nil
}

// Save serializes the full line-item collection under the cart key.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart snapshot")
	}

	if err := repo.store.Set(ctx, keyCart, data); err != nil {
		return errors.Wrap(err, "failed to persist cart snapshot")
	}

	return nil
}

// Clear resets the snapshot to an empty collection.
func (repo *cartRepository) Clear(ctx context.Context) error {
	return repo.Save(ctx, &entity.Cart{})
}
