// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// MenuItem is a single entry in the café catalog. Items are loaded once at
// process start and never mutated afterwards.
type MenuItem struct {
	ID          string  `json:"id"`          // Unique catalog identifier, e.g. "item1".
	Name        string  `json:"name"`        // Display name shown on the menu.
	Description string  `json:"description"` // Short marketing description.
	Price       float64 `json:"price"`       // Unit price, non-negative.
	Category    string  `json:"category"`    // Foreign key into the Category set.
	Image       string  `json:"image"`       // Image reference for the presentation layer.
	IsFeatured  bool    `json:"isFeatured,omitempty"`
}

// Category groups menu items into menu sections.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
