package domain

import (
	"context"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
)

// ItemConfig holds one station's configuration for one catalog item.
// Absence of an entry means the item is unavailable at the station: stations
// opt in to items explicitly, there is no implicit "available everywhere".
type ItemConfig struct {
	Available         bool    `json:"available"`
	RequestedQuantity float64 `json:"requestedQuantity"`
}

// CategoryConfig maps item id to its per-station configuration
type CategoryConfig map[string]ItemConfig

// Config is one station's full configuration across categories
type Config map[catalogdomain.Category]CategoryConfig

// Ensure returns the entry for (category, itemID), creating the category map
// when missing. The caller writes the modified entry back.
func (c Config) Ensure(category catalogdomain.Category, itemID string) ItemConfig {
	if c[category] == nil {
		c[category] = CategoryConfig{}
	}
	return c[category][itemID]
}

// Clone returns a deep copy of the config; mutating the copy never affects
// the source.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for category, items := range c {
		copied := make(CategoryConfig, len(items))
		for id, cfg := range items {
			copied[id] = cfg
		}
		out[category] = copied
	}
	return out
}

// DefaultRequestedQuantity returns the convenience quantity seeded when an
// item is first made available at a station.
func DefaultRequestedQuantity(category catalogdomain.Category) float64 {
	switch category {
	case catalogdomain.CategoryMilk:
		return 5 // litres
	case catalogdomain.CategoryCoffee:
		return 2 // kilograms
	case catalogdomain.CategoryCups:
		return 50
	default:
		return 10
	}
}

// ConfigRepository defines the contract for station configuration data
// access. Every mutation re-reads the persisted documents, applies the single
// change, and writes them back whole; concurrent writers converge on
// last-write-wins.
type ConfigRepository interface {
	// GetConfig returns the station's merged availability and quantity
	// configuration. A station with no stored config gets an empty map.
	GetConfig(ctx context.Context, stationID string) (Config, error)

	// SetAvailability toggles one item's availability. A false to true
	// transition with no prior quantity seeds the category default.
	SetAvailability(ctx context.Context, stationID string, category catalogdomain.Category, itemID string, available bool) error

	// SetQuantity sets the requested quantity, clamped to >= 0. It does not
	// require the item to be available; quantities may be staged up front.
	SetQuantity(ctx context.Context, stationID string, category catalogdomain.Category, itemID string, quantity float64) error

	// SetCategoryAvailability sets availability for every listed item in one
	// write per document, so the change applies atomically.
	SetCategoryAvailability(ctx context.Context, stationID string, category catalogdomain.Category, itemIDs []string, available bool) error

	// CopyConfig deep-copies the full configuration of one station onto
	// another, replacing whatever the target had.
	CopyConfig(ctx context.Context, fromStationID, toStationID string) error

	// SumRequestedQuantities aggregates requested quantities of available
	// items across every station, keyed by category then item id. Used to
	// recompute event pool allocation; never cached.
	SumRequestedQuantities(ctx context.Context) (map[catalogdomain.Category]map[string]float64, error)
}
