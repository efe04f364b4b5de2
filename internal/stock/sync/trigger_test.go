package sync

import (
	"context"
	"testing"
	"time"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
)

func TestTriggerCollapsesBurstIntoOneSync(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")

	// Long window so nothing fires until Flush
	trigger := NewTrigger(env.sync, time.Hour)
	defer trigger.Close()

	trigger.InventoryChanged(ctx)
	trigger.StationConfigChanged(ctx, "1")
	trigger.InventoryChanged(ctx)

	ledger, _ := env.ledgers.Load(ctx, "1")
	if ledger.Len() != 0 {
		t.Fatal("sync ran before the quiet window elapsed")
	}

	trigger.Flush()

	ledger, _ = env.ledgers.Load(ctx, "1")
	if ledger.Len() != 1 {
		t.Errorf("ledger has %d entries after flush, want 1", ledger.Len())
	}
}

func TestTriggerInvalidatesSessionMemo(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	if result, _ := env.sync.SyncStation(ctx, "1"); result != ResultSynced {
		t.Fatalf("initial sync failed")
	}

	trigger := NewTrigger(env.sync, time.Hour)
	defer trigger.Close()

	// A config change clears the memo even before the debounced sync runs
	trigger.StationConfigChanged(ctx, "1")

	if result, _ := env.sync.SyncStation(ctx, "1"); result != ResultSynced {
		t.Errorf("sync after config change = %s, want synced", result)
	}
}

func TestTriggerIgnoresStockUpdates(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")

	trigger := NewTrigger(env.sync, time.Hour)
	defer trigger.Close()

	// Ledger writes must never schedule a resync, or every sync would
	// schedule the next one.
	trigger.StockUpdated(ctx, "1")
	trigger.Flush()

	ledger, _ := env.ledgers.Load(ctx, "1")
	if ledger.Len() != 0 {
		t.Error("stock update notification triggered a sync")
	}
}

func TestTriggerClosedDropsPending(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")

	trigger := NewTrigger(env.sync, 10*time.Millisecond)
	trigger.Close()

	trigger.InventoryChanged(ctx)
	time.Sleep(50 * time.Millisecond)

	ledger, _ := env.ledgers.Load(ctx, "1")
	if ledger.Len() != 0 {
		t.Error("closed trigger still fired")
	}
}
