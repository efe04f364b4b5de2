package sync

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	stationdomain "github.com/cafeops/eventbrew/internal/station/domain"
	"github.com/cafeops/eventbrew/internal/stock/domain"
	"github.com/cafeops/eventbrew/pkg/logger"
)

// Result describes the outcome of syncing one station
type Result int

const (
	// ResultSynced means a fresh ledger was derived and written
	ResultSynced Result = iota
	// ResultPreserved means live depleted stock was detected and the resync
	// left the ledger completely untouched
	ResultPreserved
	// ResultEmpty means there was nothing to sync: no existing ledger and no
	// available items to derive one from
	ResultEmpty
	// ResultSkipped means the station was already synced this session and
	// the call was a non-forced no-op
	ResultSkipped
)

func (r Result) String() string {
	switch r {
	case ResultSynced:
		return "synced"
	case ResultPreserved:
		return "preserved"
	case ResultEmpty:
		return "empty"
	case ResultSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Synchronizer derives per-station stock ledgers from the catalog and
// station configuration. It never overwrites live depleted stock: a ledger
// with any entry below capacity is left exactly as it is.
type Synchronizer struct {
	catalog  catalogdomain.Repository
	configs  stationdomain.ConfigRepository
	stations stationdomain.StationRepository
	ledgers  domain.LedgerRepository
	pool     domain.PoolRepository
	notifier events.Notifier

	mu     sync.Mutex
	synced map[string]bool // session memo, bypassed by ForceSyncStation
}

// NewSynchronizer creates a new stock synchronizer
func NewSynchronizer(
	catalog catalogdomain.Repository,
	configs stationdomain.ConfigRepository,
	stations stationdomain.StationRepository,
	ledgers domain.LedgerRepository,
	pool domain.PoolRepository,
	notifier events.Notifier,
) *Synchronizer {
	return &Synchronizer{
		catalog:  catalog,
		configs:  configs,
		stations: stations,
		ledgers:  ledgers,
		pool:     pool,
		notifier: notifier,
		synced:   make(map[string]bool),
	}
}

// SyncStation syncs one station unless it was already synced this session.
// Configuration and catalog changes clear the memo through Invalidate, so a
// skip can only happen when nothing changed in between.
func (s *Synchronizer) SyncStation(ctx context.Context, stationID string) (Result, error) {
	s.mu.Lock()
	if s.synced[stationID] {
		s.mu.Unlock()
		return ResultSkipped, nil
	}
	s.mu.Unlock()

	return s.syncStation(ctx, stationID)
}

// ForceSyncStation syncs one station regardless of the session memo. Force
// bypasses the memo only: the depletion guard still applies, so a forced
// sync of a station with depleted stock remains a no-op.
func (s *Synchronizer) ForceSyncStation(ctx context.Context, stationID string) (Result, error) {
	return s.syncStation(ctx, stationID)
}

// Invalidate clears the session memo for one station, or for every station
// when stationID is empty.
func (s *Synchronizer) Invalidate(stationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stationID == "" {
		s.synced = make(map[string]bool)
		return
	}
	delete(s.synced, stationID)
}

func (s *Synchronizer) syncStation(ctx context.Context, stationID string) (Result, error) {
	live, err := s.ledgers.Load(ctx, stationID)
	if err != nil {
		return ResultEmpty, fmt.Errorf("failed to load ledger: %w", err)
	}

	// Depletion guard: any entry below capacity means orders or manual edits
	// have touched this ledger. Resyncing now would resurrect consumed stock,
	// so the whole station is preserved untouched.
	if live.AnyDepleted() {
		logger.Debug(ctx).
			Str("station_id", stationID).
			Msg("Ledger has depleted entries, preserving")
		s.markSynced(stationID)
		return ResultPreserved, nil
	}

	derived, err := s.deriveLedger(ctx, stationID)
	if err != nil {
		return ResultEmpty, err
	}

	if derived.Len() == 0 && live.Len() == 0 {
		s.markSynced(stationID)
		return ResultEmpty, nil
	}

	if err := s.ledgers.Save(ctx, stationID, derived); err != nil {
		return ResultEmpty, fmt.Errorf("failed to save ledger: %w", err)
	}
	s.markSynced(stationID)

	logger.Info(ctx).
		Str("station_id", stationID).
		Int("entries", derived.Len()).
		Msg("Station stock synced")

	// The trigger ignores stock notifications, so this cannot loop back
	// into another resync.
	s.notifier.StockUpdated(ctx, stationID)
	return ResultSynced, nil
}

// deriveLedger computes a fresh ledger for the station: every enabled
// catalog item the station has opted into, seeded from category defaults and
// overridden by the station's requested quantity.
func (s *Synchronizer) deriveLedger(ctx context.Context, stationID string) (domain.Ledger, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Catalog unavailable, syncing empty ledger")
		return domain.Ledger{}, nil
	}

	// A station with no stored config has opted into nothing.
	config, err := s.configs.GetConfig(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load station config: %w", err)
	}

	ledger := domain.Ledger{}
	for _, category := range catalogdomain.Categories {
		for _, item := range catalog[category] {
			if !item.Enabled {
				continue
			}
			cfg, ok := config[category][item.ID]
			if !ok || !cfg.Available {
				continue
			}

			d := domain.Defaults(category, item.Name)
			entry := domain.Entry{
				StationID:         stationID,
				Category:          category,
				ItemID:            item.ID,
				Name:              item.Name,
				Amount:            d.Amount,
				Capacity:          d.Capacity,
				Unit:              d.Unit,
				LowThreshold:      d.LowThreshold,
				CriticalThreshold: d.CriticalThreshold,
				Enabled:           true,
			}

			// A requested quantity overrides the default amount and raises
			// capacity to at least the request, never truncating it.
			if cfg.RequestedQuantity > 0 {
				entry.Amount = cfg.RequestedQuantity
				if entry.Capacity < cfg.RequestedQuantity {
					entry.Capacity = cfg.RequestedQuantity
				}
			}

			if entry.LowThreshold > entry.Capacity {
				entry.LowThreshold = entry.Capacity
			}
			if entry.CriticalThreshold > entry.LowThreshold {
				entry.CriticalThreshold = entry.LowThreshold
			}
			entry.RecomputeStatus()

			ledger[category] = append(ledger[category], entry)
		}
	}

	return ledger, nil
}

func (s *Synchronizer) markSynced(stationID string) {
	s.mu.Lock()
	s.synced[stationID] = true
	s.mu.Unlock()
}

// SyncAll force-syncs every known station. Per-station failures are logged
// and counted; they never abort the batch.
func (s *Synchronizer) SyncAll(ctx context.Context) map[string]Result {
	results := make(map[string]Result)

	stations, err := s.stations.FindAll(200, 0)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to list stations for sync")
		return results
	}

	for i := range stations {
		stationID := strconv.FormatUint(uint64(stations[i].ID), 10)
		result, err := s.ForceSyncStation(ctx, stationID)
		if err != nil {
			logger.Error(ctx).Err(err).
				Str("station_id", stationID).
				Msg("Failed to sync station")
			continue
		}
		results[stationID] = result
	}

	return results
}

// RecomputeAllocated rebuilds the event stock pool's allocation figures from
// the live station configuration documents and stores the result. The sums
// are always recomputed in place, never read from a cached copy.
func (s *Synchronizer) RecomputeAllocated(ctx context.Context) (domain.Pool, error) {
	sums, err := s.configs.SumRequestedQuantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum requested quantities: %w", err)
	}

	pool, err := s.pool.Load(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, category := range catalogdomain.Categories {
		for _, item := range catalog[category] {
			if pool[category] == nil {
				pool[category] = map[string]domain.PoolEntry{}
			}
			entry := pool[category][item.ID]
			if entry.Unit == "" {
				entry.Unit = domain.Defaults(category, item.Name).Unit
			}
			entry.Allocated = sums[category][item.ID]
			entry.Available = entry.Quantity - entry.Allocated
			pool[category][item.ID] = entry
		}
	}

	if err := s.pool.Save(ctx, pool); err != nil {
		return nil, fmt.Errorf("failed to save stock pool: %w", err)
	}

	return pool, nil
}
