// Package catalog provides the immutable in-memory menu catalog. The data is
// fixed at compile time; the rest of the system consumes it only through the
// CatalogRepository lookups.
package catalog

import (
	"elegance/internal/domain/entity"
	"elegance/internal/domain/repository"
)

// staticCatalog implements repository.CatalogRepository over fixed slices.
type staticCatalog struct {
	items      []entity.MenuItem
	categories []entity.Category
	byID       map[string]entity.MenuItem
}

// NewStaticCatalog is the constructor for the built-in café menu.
func NewStaticCatalog() repository.CatalogRepository {
	items := menuItems()
	byID := make(map[string]entity.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &staticCatalog{
		items:      items,
		categories: menuCategories(),
		byID:       byID,
	}
}

// Items returns every menu item in catalog order.
func (c *staticCatalog) Items() []entity.MenuItem {
	return c.items
}

// Categories returns every category in catalog order.
func (c *staticCatalog) Categories() []entity.Category {
	return c.categories
}

// ItemByID returns a single item, or repository.ErrMenuItemNotFound.
func (c *staticCatalog) ItemByID(id string) (entity.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return entity.MenuItem{}, repository.ErrMenuItemNotFound
	}

	return item, nil
}

// ItemsByCategory returns all items belonging to a category id.
func (c *staticCatalog) ItemsByCategory(categoryID string) []entity.MenuItem {
	var matched []entity.MenuItem
	for _, item := range c.items {
		if item.Category == categoryID {
			matched = append(matched, item)
		}
	}

	return matched
}

// FeaturedItems returns the items flagged as featured.
func (c *staticCatalog) FeaturedItems() []entity.MenuItem {
	var featured []entity.MenuItem
	for _, item := range c.items {
		if item.IsFeatured {
			featured = append(featured, item)
		}
	}

	return featured
}

func menuCategories() []entity.Category {
	return []entity.Category{
		{ID: "coffee", Name: "Coffee", Description: "Our signature espresso-based creations"},
		{ID: "tea", Name: "Tea", Description: "Premium loose leaf teas"},
		{ID: "pastry", Name: "Pastries", Description: "Freshly baked goods"},
		{ID: "dessert", Name: "Desserts", Description: "Sweet treats to brighten your day"},
	}
}

func menuItems() []entity.MenuItem {
	return []entity.MenuItem{
		{
			ID:          "item1",
			Name:        "Signature Latte",
			Description: "Our house specialty with perfectly balanced espresso and silky steamed milk",
			Price:       5.50,
			Category:    "coffee",
			Image:       "/images/signature-latte.jpg",
			IsFeatured:  true,
		},
		{
			ID:          "item2",
			Name:        "Cappuccino",
			Description: "Equal parts espresso, steamed milk, and milk foam",
			Price:       4.75,
			Category:    "coffee",
			Image:       "/images/cappuccino.jpg",
			IsFeatured:  true,
		},
		{
			ID:          "item3",
			Name:        "Pour Over",
			Description: "Hand-poured coffee highlighting the unique characteristics of our single-origin beans",
			Price:       5.25,
			Category:    "coffee",
			Image:       "/images/pour-over.jpg",
		},
		{
			ID:          "item4",
			Name:        "Matcha Latte",
			Description: "Premium Japanese matcha whisked with steamed milk",
			Price:       5.75,
			Category:    "tea",
			Image:       "/images/matcha-latte.jpg",
			IsFeatured:  true,
		},
		{
			ID:          "item5",
			Name:        "Earl Grey Tea",
			Description: "Classic black tea infused with bergamot essence",
			Price:       4.50,
			Category:    "tea",
			Image:       "/images/earl-grey.jpg",
		},
		{
			ID:          "item6",
			Name:        "Almond Croissant",
			Description: "Buttery, flaky croissant filled with rich almond cream",
			Price:       4.75,
			Category:    "pastry",
			Image:       "/images/almond-croissant.jpg",
			IsFeatured:  true,
		},
		{
			ID:          "item7",
			Name:        "Pain au Chocolat",
			Description: "Chocolate-filled French pastry made with laminated dough",
			Price:       4.50,
			Category:    "pastry",
			Image:       "/images/pain-au-chocolat.jpg",
		},
		{
			ID:          "item8",
			Name:        "Tiramisu",
			Description: "Italian dessert made with espresso-dipped ladyfingers and mascarpone cream",
			Price:       6.50,
			Category:    "dessert",
			Image:       "/images/tiramisu.jpg",
			IsFeatured:  true,
		},
	}
}
