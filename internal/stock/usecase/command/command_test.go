package command

import (
	"context"
	"testing"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	stationrepo "github.com/cafeops/eventbrew/internal/station/repository"
	"github.com/cafeops/eventbrew/internal/stock/domain"
	stockrepo "github.com/cafeops/eventbrew/internal/stock/repository"
	"github.com/cafeops/eventbrew/pkg/storage"
)

func seedLedger(t *testing.T, ledgers domain.LedgerRepository, stationID string) {
	t.Helper()
	ledger := domain.Ledger{
		catalogdomain.CategoryMilk: {
			{
				StationID:         stationID,
				Category:          catalogdomain.CategoryMilk,
				ItemID:            "oat",
				Name:              "Oat Milk",
				Amount:            5,
				Capacity:          5,
				Unit:              "L",
				LowThreshold:      2,
				CriticalThreshold: 1,
				Status:            domain.StatusGood,
				Enabled:           true,
			},
		},
	}
	if err := ledgers.Save(context.Background(), stationID, ledger); err != nil {
		t.Fatalf("seed ledger: %v", err)
	}
}

func TestDecrementStockFloorsAtZero(t *testing.T) {
	store := storage.NewMemoryStore()
	ledgers := stockrepo.NewStoreLedgerRepository(store)
	seedLedger(t, ledgers, "1")

	handler := NewDecrementStockHandler(ledgers, events.Nop{})
	ctx := context.Background()

	if err := handler.Handle(ctx, DecrementStockCommand{
		StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "oat", Amount: 3,
	}); err != nil {
		t.Fatalf("first decrement: %v", err)
	}

	ledger, _ := ledgers.Load(ctx, "1")
	oat := ledger.Find(catalogdomain.CategoryMilk, "oat")
	if oat.Amount != 2 {
		t.Errorf("amount = %v, want 2", oat.Amount)
	}
	if oat.Status != domain.StatusLow {
		t.Errorf("status = %s, want low", oat.Status)
	}

	// Over-consumption floors at zero instead of going negative
	if err := handler.Handle(ctx, DecrementStockCommand{
		StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "oat", Amount: 10,
	}); err != nil {
		t.Fatalf("second decrement: %v", err)
	}

	ledger, _ = ledgers.Load(ctx, "1")
	oat = ledger.Find(catalogdomain.CategoryMilk, "oat")
	if oat.Amount != 0 {
		t.Errorf("amount = %v, want floored 0", oat.Amount)
	}
	if oat.Status != domain.StatusCritical {
		t.Errorf("status = %s, want critical", oat.Status)
	}
}

func TestDecrementUnknownItemIsSkipped(t *testing.T) {
	store := storage.NewMemoryStore()
	ledgers := stockrepo.NewStoreLedgerRepository(store)
	seedLedger(t, ledgers, "1")

	handler := NewDecrementStockHandler(ledgers, events.Nop{})

	// The order may reference an item removed from the catalog; that must
	// not fail the rest of the order.
	err := handler.Handle(context.Background(), DecrementStockCommand{
		StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "camel", Amount: 1,
	})
	if err != nil {
		t.Errorf("decrement of unknown item returned error: %v", err)
	}
}

func TestDecrementRejectsInvalidCommands(t *testing.T) {
	handler := NewDecrementStockHandler(stockrepo.NewStoreLedgerRepository(storage.NewMemoryStore()), events.Nop{})
	ctx := context.Background()

	if err := handler.Handle(ctx, DecrementStockCommand{Category: catalogdomain.CategoryMilk, ItemID: "oat", Amount: 1}); err == nil {
		t.Error("missing station_id accepted")
	}
	if err := handler.Handle(ctx, DecrementStockCommand{StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "oat", Amount: 0}); err == nil {
		t.Error("zero amount accepted")
	}
}

func TestResetStockClampsToCapacity(t *testing.T) {
	store := storage.NewMemoryStore()
	ledgers := stockrepo.NewStoreLedgerRepository(store)
	seedLedger(t, ledgers, "1")

	handler := NewResetStockHandler(ledgers, events.Nop{})
	ctx := context.Background()

	if err := handler.Handle(ctx, ResetStockCommand{
		StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "oat", NewAmount: 100,
	}); err != nil {
		t.Fatalf("reset: %v", err)
	}

	ledger, _ := ledgers.Load(ctx, "1")
	if got := ledger.Find(catalogdomain.CategoryMilk, "oat").Amount; got != 5 {
		t.Errorf("amount = %v, want clamped to capacity 5", got)
	}

	if err := handler.Handle(ctx, ResetStockCommand{
		StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "oat", NewAmount: -1,
	}); err == nil {
		t.Error("negative amount accepted")
	}
}

func TestSetCapacityRescalesThresholds(t *testing.T) {
	store := storage.NewMemoryStore()
	ledgers := stockrepo.NewStoreLedgerRepository(store)
	seedLedger(t, ledgers, "1")

	handler := NewSetCapacityHandler(ledgers, events.Nop{})
	ctx := context.Background()

	if err := handler.Handle(ctx, SetCapacityCommand{
		StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "oat", NewCapacity: 10,
	}); err != nil {
		t.Fatalf("SetCapacity: %v", err)
	}

	ledger, _ := ledgers.Load(ctx, "1")
	oat := ledger.Find(catalogdomain.CategoryMilk, "oat")
	if oat.Capacity != 10 {
		t.Errorf("capacity = %v, want 10", oat.Capacity)
	}
	// Thresholds keep their share of capacity: 2/5 and 1/5 of 10
	if oat.LowThreshold != 4 || oat.CriticalThreshold != 2 {
		t.Errorf("thresholds = %v/%v, want 4/2", oat.LowThreshold, oat.CriticalThreshold)
	}
}

func TestSetCapacityRejectsBelowAmount(t *testing.T) {
	store := storage.NewMemoryStore()
	ledgers := stockrepo.NewStoreLedgerRepository(store)
	seedLedger(t, ledgers, "1")

	handler := NewSetCapacityHandler(ledgers, events.Nop{})

	err := handler.Handle(context.Background(), SetCapacityCommand{
		StationID: "1", Category: catalogdomain.CategoryMilk, ItemID: "oat", NewCapacity: 3,
	})
	if err == nil {
		t.Error("capacity below current amount accepted")
	}
}

func TestSetPoolQuantityRecomputesAllocation(t *testing.T) {
	store := storage.NewMemoryStore()
	pool := stockrepo.NewStorePoolRepository(store)
	configs := stationrepo.NewStoreConfigRepository(store)
	ctx := context.Background()

	if err := configs.SetAvailability(ctx, "1", catalogdomain.CategoryMilk, "oat", true); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if err := configs.SetQuantity(ctx, "1", catalogdomain.CategoryMilk, "oat", 8); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}

	handler := NewSetPoolQuantityHandler(pool, configs)
	if err := handler.Handle(ctx, SetPoolQuantityCommand{
		Category: catalogdomain.CategoryMilk, ItemID: "oat", Quantity: 20, Unit: "L",
	}); err != nil {
		t.Fatalf("SetPoolQuantity: %v", err)
	}

	stored, _ := pool.Load(ctx)
	entry := stored[catalogdomain.CategoryMilk]["oat"]
	if entry.Quantity != 20 || entry.Allocated != 8 || entry.Available != 12 {
		t.Errorf("pool entry = %+v, want quantity 20, allocated 8, available 12", entry)
	}

	if err := handler.Handle(ctx, SetPoolQuantityCommand{
		Category: "tea", ItemID: "oat", Quantity: 1,
	}); err == nil {
		t.Error("unknown category accepted")
	}
}
