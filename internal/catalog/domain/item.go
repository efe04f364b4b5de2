package domain

import "context"

// Category identifies one group of purchasable item types
type Category string

const (
	CategoryMilk       Category = "milk"
	CategoryCoffee     Category = "coffee"
	CategoryCups       Category = "cups"
	CategorySyrups     Category = "syrups"
	CategorySweeteners Category = "sweeteners"
	CategoryExtras     Category = "extras"
)

// Categories lists every catalog category in display order
var Categories = []Category{
	CategoryMilk,
	CategoryCoffee,
	CategoryCups,
	CategorySyrups,
	CategorySweeteners,
	CategoryExtras,
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item represents one purchasable item type in the event inventory catalog
type Item struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Enabled     bool     `json:"enabled"`

	// Category-specific fields
	VolumeML      int    `json:"volumeMl,omitempty"`      // cups
	ShotsRequired int    `json:"shotsRequired,omitempty"` // cups
	Color         string `json:"color,omitempty"`         // milk, for visual identification
}

// Catalog is the persisted shape of the event inventory: items grouped by
// category. Item ids are unique within their category.
type Catalog map[Category][]Item

// Find returns the item with the given id in category, or nil
func (c Catalog) Find(category Category, id string) *Item {
	for i := range c[category] {
		if c[category][i].ID == id {
			return &c[category][i]
		}
	}
	return nil
}

// Repository defines the contract for catalog data access. Mutations reload
// the persisted catalog, apply the single change, and write the whole
// document back, so concurrent writers converge on last-write-wins.
type Repository interface {
	Load(ctx context.Context) (Catalog, error)
	ListItems(ctx context.Context, category Category) ([]Item, error)
	FindItem(ctx context.Context, category Category, id string) (*Item, error)
	SaveItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, category Category, id string) error
	EnsureSeeded(ctx context.Context) error
}
