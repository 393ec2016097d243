// Package impl contains the application-specific business rules implementations.
package impl

import (
	"elegance/internal/domain/entity"
	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/domain/repository"
	"elegance/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalog: catalog}
}

// ListItems returns the full menu in catalog order.
func (srv *catalogService) ListItems() []entity.MenuItem {
	return srv.catalog.Items()
}

// ListCategories returns every category in catalog order.
func (srv *catalogService) ListCategories() []entity.Category {
	return srv.catalog.Categories()
}

// ItemsByCategory returns the items for one category id. An unknown category
// is an error rather than an empty list so the delivery layer can answer 404.
func (srv *catalogService) ItemsByCategory(categoryID string) ([]entity.MenuItem, error) {
	for _, category := range srv.catalog.Categories() {
		if category.ID == categoryID {
			return srv.catalog.ItemsByCategory(categoryID), nil
		}
	}

	return nil, domainerrors.ErrCategoryNotFound
}

// FeaturedItems returns the items flagged as featured.
func (srv *catalogService) FeaturedItems() []entity.MenuItem {
	return srv.catalog.FeaturedItems()
}

// ItemByID returns a single menu item.
func (srv *catalogService) ItemByID(id string) (entity.MenuItem, error) {
	item, err := srv.catalog.ItemByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return entity.MenuItem{}, domainerrors.ErrItemNotFound
		}

		return entity.MenuItem{}, err
	}

	return item, nil
}
