// Package usecase defines the interfaces for the application layer.
package usecase

import (
	"elegance/internal/domain/entity"
)

// CatalogUsecase defines the interface for menu browsing use cases
type CatalogUsecase interface {
	// ListItems returns the full menu in catalog order
	ListItems() []entity.MenuItem

	// ListCategories returns every category in catalog order
	ListCategories() []entity.Category

	// ItemsByCategory returns the items for one category id
	ItemsByCategory(categoryID string) ([]entity.MenuItem, error)

	// FeaturedItems returns the items flagged as featured
	FeaturedItems() []entity.MenuItem

	// ItemByID returns a single menu item
	ItemByID(id string) (entity.MenuItem, error)
}
