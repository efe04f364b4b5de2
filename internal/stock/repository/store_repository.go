package repository

import (
	"context"

	"github.com/cafeops/eventbrew/internal/stock/domain"
	"github.com/cafeops/eventbrew/pkg/logger"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// Document keys for stock state
const (
	KeyEventStockLevels = "event_stock_levels"
	StationLedgerPrefix = "coffee_stock_station_"
)

// LedgerKey returns the document key for one station's live ledger
func LedgerKey(stationID string) string {
	return StationLedgerPrefix + stationID
}

// StoreLedgerRepository persists each station's live stock ledger as one
// document on the shared store.
type StoreLedgerRepository struct {
	store storage.Store
}

// NewStoreLedgerRepository creates a new store-backed ledger repository
func NewStoreLedgerRepository(store storage.Store) *StoreLedgerRepository {
	return &StoreLedgerRepository{store: store}
}

// Load reads one station's ledger. Missing means no ledger yet; unreadable
// is treated the same way, after a warning, so the next sync rebuilds it.
func (r *StoreLedgerRepository) Load(ctx context.Context, stationID string) (domain.Ledger, error) {
	var ledger domain.Ledger
	found, err := storage.GetJSON(ctx, r.store, LedgerKey(stationID), &ledger)
	if err != nil {
		logger.Warn(ctx).Err(err).
			Str("station_id", stationID).
			Msg("Persisted stock ledger unreadable, treating as empty")
		return domain.Ledger{}, nil
	}
	if !found || ledger == nil {
		return domain.Ledger{}, nil
	}
	return ledger, nil
}

// Save writes one station's full ledger
func (r *StoreLedgerRepository) Save(ctx context.Context, stationID string, ledger domain.Ledger) error {
	return storage.SetJSON(ctx, r.store, LedgerKey(stationID), ledger)
}

// StorePoolRepository persists the event-wide stock pool document
type StorePoolRepository struct {
	store storage.Store
}

// NewStorePoolRepository creates a new store-backed pool repository
func NewStorePoolRepository(store storage.Store) *StorePoolRepository {
	return &StorePoolRepository{store: store}
}

func (r *StorePoolRepository) Load(ctx context.Context) (domain.Pool, error) {
	var pool domain.Pool
	found, err := storage.GetJSON(ctx, r.store, KeyEventStockLevels, &pool)
	if err != nil {
		logger.Warn(ctx).Err(err).
			Str("key", KeyEventStockLevels).
			Msg("Persisted stock pool unreadable, resetting")
		return domain.Pool{}, nil
	}
	if !found || pool == nil {
		return domain.Pool{}, nil
	}
	return pool, nil
}

func (r *StorePoolRepository) Save(ctx context.Context, pool domain.Pool) error {
	return storage.SetJSON(ctx, r.store, KeyEventStockLevels, pool)
}
