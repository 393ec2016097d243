package repository

import (
	"elegance/internal/domain/entity"
	"elegance/internal/errors"
)

// ErrMenuItemNotFound is returned when a catalog id does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// CatalogRepository is the read-only catalog collaborator. The catalog is
// immutable, so lookups take no context: nothing blocks.
type CatalogRepository interface {
	// Items returns every menu item in catalog order.
	Items() []entity.MenuItem

	// Categories returns every category in catalog order.
	Categories() []entity.Category

	// ItemByID returns a single item, or ErrMenuItemNotFound.
	ItemByID(id string) (entity.MenuItem, error)

	// ItemsByCategory returns all items belonging to a category id.
	ItemsByCategory(categoryID string) []entity.MenuItem

	// FeaturedItems returns the items flagged as featured.
	FeaturedItems() []entity.MenuItem
}
