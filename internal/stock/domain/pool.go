package domain

import (
	"context"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
)

// PoolEntry is the event-wide stock position for one catalog item. Allocated
// is always recomputed from the live station configs, never read from a
// cached copy.
type PoolEntry struct {
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Allocated float64 `json:"allocated"`
	Available float64 `json:"available"`
}

// Pool is the event-wide stock pool, keyed by category then item id
type Pool map[catalogdomain.Category]map[string]PoolEntry

// LedgerRepository defines the contract for per-station stock ledger access
type LedgerRepository interface {
	Load(ctx context.Context, stationID string) (Ledger, error)
	Save(ctx context.Context, stationID string, ledger Ledger) error
}

// PoolRepository defines the contract for the event-wide stock pool document
type PoolRepository interface {
	Load(ctx context.Context) (Pool, error)
	Save(ctx context.Context, pool Pool) error
}
