package sync

import (
	"context"
	"sync"
	"time"

	"github.com/cafeops/eventbrew/pkg/logger"
)

// Trigger batches catalog and station-config change notifications into
// debounced resyncs: rapid successive edits collapse into a single sync per
// quiet window. Throttling is a performance concern only; the converged
// ledger is the same as if every change had synced immediately.
//
// Trigger implements events.Notifier. Stock notifications are deliberately
// ignored so the synchronizer's own ledger writes can never re-trigger it.
type Trigger struct {
	synchronizer *Synchronizer
	window       time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	all      bool
	stations map[string]bool
	closed   bool
}

// NewTrigger creates a debounced resync trigger with the given quiet window
func NewTrigger(synchronizer *Synchronizer, window time.Duration) *Trigger {
	return &Trigger{
		synchronizer: synchronizer,
		window:       window,
		stations:     make(map[string]bool),
	}
}

// InventoryChanged schedules a resync of every station
func (t *Trigger) InventoryChanged(ctx context.Context) {
	t.synchronizer.Invalidate("")
	t.schedule(func() {
		t.mu.Lock()
		t.all = true
		t.mu.Unlock()
	})
}

// StationConfigChanged schedules a resync of one station
func (t *Trigger) StationConfigChanged(ctx context.Context, stationID string) {
	t.synchronizer.Invalidate(stationID)
	t.schedule(func() {
		t.mu.Lock()
		t.stations[stationID] = true
		t.mu.Unlock()
	})
}

// StockUpdated is a no-op: ledger writes never re-trigger a resync
func (t *Trigger) StockUpdated(ctx context.Context, stationID string) {}

func (t *Trigger) schedule(record func()) {
	record()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.window, t.fire)
}

// fire runs the pending resyncs after a quiet window
func (t *Trigger) fire() {
	t.mu.Lock()
	all := t.all
	stations := t.stations
	t.all = false
	t.stations = make(map[string]bool)
	t.mu.Unlock()

	ctx := context.Background()

	if all {
		results := t.synchronizer.SyncAll(ctx)
		logger.Debug(ctx).
			Int("stations", len(results)).
			Msg("Debounced full resync completed")
		if _, err := t.synchronizer.RecomputeAllocated(ctx); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to recompute pool allocation")
		}
		return
	}

	for stationID := range stations {
		result, err := t.synchronizer.ForceSyncStation(ctx, stationID)
		if err != nil {
			logger.Error(ctx).Err(err).
				Str("station_id", stationID).
				Msg("Debounced resync failed")
			continue
		}
		logger.Debug(ctx).
			Str("station_id", stationID).
			Str("result", result.String()).
			Msg("Debounced resync completed")
	}

	if len(stations) > 0 {
		if _, err := t.synchronizer.RecomputeAllocated(ctx); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to recompute pool allocation")
		}
	}
}

// Flush runs any pending resync immediately. Used in tests and on shutdown.
func (t *Trigger) Flush() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()

	t.fire()
}

// Close stops the trigger; pending notifications are dropped
func (t *Trigger) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
