package sync

import (
	"context"
	"reflect"
	"testing"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	catalogrepo "github.com/cafeops/eventbrew/internal/catalog/repository"
	"github.com/cafeops/eventbrew/internal/events"
	stationdomain "github.com/cafeops/eventbrew/internal/station/domain"
	stationrepo "github.com/cafeops/eventbrew/internal/station/repository"
	"github.com/cafeops/eventbrew/internal/stock/domain"
	stockrepo "github.com/cafeops/eventbrew/internal/stock/repository"
	"github.com/cafeops/eventbrew/pkg/storage"
)

type fakeStationRepository struct {
	stations []stationdomain.Station
}

func (f *fakeStationRepository) Create(station *stationdomain.Station) error {
	station.ID = uint(len(f.stations) + 1)
	f.stations = append(f.stations, *station)
	return nil
}

func (f *fakeStationRepository) FindByID(id uint) (*stationdomain.Station, error) {
	for i := range f.stations {
		if f.stations[i].ID == id {
			return &f.stations[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStationRepository) FindAll(limit, offset int) ([]stationdomain.Station, error) {
	return f.stations, nil
}

func (f *fakeStationRepository) Update(station *stationdomain.Station) error { return nil }
func (f *fakeStationRepository) Delete(id uint) error                        { return nil }

type testEnv struct {
	store    *storage.MemoryStore
	catalog  catalogdomain.Repository
	configs  stationdomain.ConfigRepository
	stations *fakeStationRepository
	ledgers  domain.LedgerRepository
	pool     domain.PoolRepository
	sync     *Synchronizer
}

func newTestEnv(t *testing.T, stationIDs ...uint) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	env := &testEnv{
		store:    store,
		catalog:  catalogrepo.NewStoreCatalogRepository(store),
		configs:  stationrepo.NewStoreConfigRepository(store),
		stations: &fakeStationRepository{},
		ledgers:  stockrepo.NewStoreLedgerRepository(store),
		pool:     stockrepo.NewStorePoolRepository(store),
	}

	if err := env.catalog.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	for _, id := range stationIDs {
		env.stations.stations = append(env.stations.stations, stationdomain.Station{ID: id, Name: "Station", Status: "active"})
	}

	env.sync = NewSynchronizer(env.catalog, env.configs, env.stations, env.ledgers, env.pool, events.Nop{})
	return env
}

func (env *testEnv) makeAvailable(t *testing.T, stationID string, category catalogdomain.Category, itemID string) {
	t.Helper()
	if err := env.configs.SetAvailability(context.Background(), stationID, category, itemID, true); err != nil {
		t.Fatalf("SetAvailability(%s/%s): %v", category, itemID, err)
	}
}

func TestSyncStationDerivesLedgerFromConfig(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	env.makeAvailable(t, "1", catalogdomain.CategoryCoffee, "house")

	result, err := env.sync.SyncStation(ctx, "1")
	if err != nil {
		t.Fatalf("SyncStation: %v", err)
	}
	if result != ResultSynced {
		t.Fatalf("result = %s, want synced", result)
	}

	ledger, err := env.ledgers.Load(ctx, "1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("ledger has %d entries, want 2", ledger.Len())
	}

	oat := ledger.Find(catalogdomain.CategoryMilk, "oat")
	if oat == nil {
		t.Fatal("no oat milk entry")
	}
	// SetAvailability seeds the milk default quantity of 5, which matches
	// the milk stock default, so capacity stays at 5.
	if oat.Amount != 5 || oat.Capacity != 5 || oat.Unit != "L" {
		t.Errorf("oat entry = %+v, want amount 5, capacity 5, unit L", oat)
	}
	if oat.Status != domain.StatusGood {
		t.Errorf("oat status = %s, want good", oat.Status)
	}

	house := ledger.Find(catalogdomain.CategoryCoffee, "house")
	if house == nil {
		t.Fatal("no house blend entry")
	}
	if house.Unit != "kg" {
		t.Errorf("house unit = %s, want kg", house.Unit)
	}
}

func TestSyncStationSkipsWithinSession(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")

	if result, _ := env.sync.SyncStation(ctx, "1"); result != ResultSynced {
		t.Fatalf("first sync = %s, want synced", result)
	}
	if result, _ := env.sync.SyncStation(ctx, "1"); result != ResultSkipped {
		t.Errorf("second sync = %s, want skipped", result)
	}

	env.sync.Invalidate("1")
	if result, _ := env.sync.SyncStation(ctx, "1"); result != ResultSynced {
		t.Errorf("sync after invalidate = %s, want synced", result)
	}
}

func TestForceSyncBypassesSessionMemo(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")

	if result, _ := env.sync.SyncStation(ctx, "1"); result != ResultSynced {
		t.Fatalf("first sync failed")
	}
	if result, _ := env.sync.ForceSyncStation(ctx, "1"); result != ResultSynced {
		t.Errorf("force sync after memo = %v, want synced", result)
	}
}

func TestResyncIsIdempotent(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	env.makeAvailable(t, "1", catalogdomain.CategoryCups, "medium")

	if _, err := env.sync.ForceSyncStation(ctx, "1"); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	first, _ := env.ledgers.Load(ctx, "1")

	if _, err := env.sync.ForceSyncStation(ctx, "1"); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	second, _ := env.ledgers.Load(ctx, "1")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("resync changed an untouched ledger:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDepletionGuardPreservesLedger(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "whole")

	if _, err := env.sync.ForceSyncStation(ctx, "1"); err != nil {
		t.Fatalf("initial sync: %v", err)
	}

	// Simulate consumption on one entry only
	ledger, _ := env.ledgers.Load(ctx, "1")
	oat := ledger.Find(catalogdomain.CategoryMilk, "oat")
	oat.Amount = 2.5
	oat.RecomputeStatus()
	if err := env.ledgers.Save(ctx, "1", ledger); err != nil {
		t.Fatalf("Save: %v", err)
	}

	result, err := env.sync.ForceSyncStation(ctx, "1")
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if result != ResultPreserved {
		t.Fatalf("result = %s, want preserved", result)
	}

	after, _ := env.ledgers.Load(ctx, "1")
	if got := after.Find(catalogdomain.CategoryMilk, "oat").Amount; got != 2.5 {
		t.Errorf("depleted entry amount = %v, want 2.5", got)
	}
	// The untouched sibling is preserved too: the guard is per station
	if got := after.Find(catalogdomain.CategoryMilk, "whole").Amount; got != 5 {
		t.Errorf("sibling entry amount = %v, want 5", got)
	}
}

func TestDepletionGuardSurvivesConfigChanges(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	if _, err := env.sync.ForceSyncStation(ctx, "1"); err != nil {
		t.Fatalf("initial sync: %v", err)
	}

	ledger, _ := env.ledgers.Load(ctx, "1")
	ledger.Find(catalogdomain.CategoryMilk, "oat").Amount = 0.5
	if err := env.ledgers.Save(ctx, "1", ledger); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// New availability would normally add an entry, but the station has
	// depleted stock, so even a forced resync must not rebuild.
	env.makeAvailable(t, "1", catalogdomain.CategoryCoffee, "decaf")
	env.sync.Invalidate("1")

	result, err := env.sync.ForceSyncStation(ctx, "1")
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if result != ResultPreserved {
		t.Fatalf("result = %s, want preserved", result)
	}

	after, _ := env.ledgers.Load(ctx, "1")
	if after.Find(catalogdomain.CategoryCoffee, "decaf") != nil {
		t.Error("resync added an entry despite depleted stock")
	}
}

func TestRequestedQuantityOverridesDefaults(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	if err := env.configs.SetQuantity(ctx, "1", catalogdomain.CategoryMilk, "oat", 7); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}

	if _, err := env.sync.ForceSyncStation(ctx, "1"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	ledger, _ := env.ledgers.Load(ctx, "1")
	oat := ledger.Find(catalogdomain.CategoryMilk, "oat")
	if oat.Amount != 7 {
		t.Errorf("amount = %v, want 7", oat.Amount)
	}
	// Capacity is raised to cover the request, never truncated below it
	if oat.Capacity != 7 {
		t.Errorf("capacity = %v, want 7", oat.Capacity)
	}
	if oat.Status != domain.StatusGood {
		t.Errorf("status = %s, want good", oat.Status)
	}
}

func TestSmallRequestedQuantityDerivesLowStatus(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	if err := env.configs.SetQuantity(ctx, "1", catalogdomain.CategoryMilk, "oat", 0.5); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}

	if _, err := env.sync.ForceSyncStation(ctx, "1"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	ledger, _ := env.ledgers.Load(ctx, "1")
	oat := ledger.Find(catalogdomain.CategoryMilk, "oat")
	if oat.Capacity != 5 {
		t.Errorf("capacity = %v, want default 5", oat.Capacity)
	}
	// 0.5 L sits at or below the 1 L critical threshold
	if oat.Status != domain.StatusCritical {
		t.Errorf("status = %s, want critical", oat.Status)
	}
}

func TestSyncExcludesDisabledAndUnavailableItems(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	// soy is disabled in the catalog; making it available must not stock it
	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "soy")
	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")

	if _, err := env.sync.ForceSyncStation(ctx, "1"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	ledger, _ := env.ledgers.Load(ctx, "1")
	if ledger.Find(catalogdomain.CategoryMilk, "soy") != nil {
		t.Error("disabled catalog item appeared in ledger")
	}
	if ledger.Find(catalogdomain.CategoryMilk, "whole") != nil {
		t.Error("item never made available appeared in ledger")
	}
	if ledger.Find(catalogdomain.CategoryMilk, "oat") == nil {
		t.Error("available enabled item missing from ledger")
	}
}

func TestSyncStationWithoutConfigIsEmpty(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	result, err := env.sync.SyncStation(ctx, "1")
	if err != nil {
		t.Fatalf("SyncStation: %v", err)
	}
	if result != ResultEmpty {
		t.Errorf("result = %s, want empty", result)
	}
}

func TestSyncAllCoversEveryStation(t *testing.T) {
	env := newTestEnv(t, 1, 2, 3)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	env.makeAvailable(t, "2", catalogdomain.CategoryCoffee, "espresso")

	results := env.sync.SyncAll(ctx)
	if len(results) != 3 {
		t.Fatalf("SyncAll returned %d results, want 3", len(results))
	}
	if results["1"] != ResultSynced {
		t.Errorf("station 1 = %s, want synced", results["1"])
	}
	if results["2"] != ResultSynced {
		t.Errorf("station 2 = %s, want synced", results["2"])
	}
	if results["3"] != ResultEmpty {
		t.Errorf("station 3 = %s, want empty", results["3"])
	}
}

func TestRecomputeAllocatedSumsAvailableRequests(t *testing.T) {
	env := newTestEnv(t, 1, 2)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	env.makeAvailable(t, "2", catalogdomain.CategoryMilk, "oat")
	if err := env.configs.SetQuantity(ctx, "2", catalogdomain.CategoryMilk, "oat", 7); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}

	// Staged quantity on an unavailable item must not count
	if err := env.configs.SetQuantity(ctx, "1", catalogdomain.CategoryMilk, "whole", 100); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}

	if err := env.pool.Save(ctx, domain.Pool{
		catalogdomain.CategoryMilk: {
			"oat": {Quantity: 20, Unit: "L"},
		},
	}); err != nil {
		t.Fatalf("pool Save: %v", err)
	}

	pool, err := env.sync.RecomputeAllocated(ctx)
	if err != nil {
		t.Fatalf("RecomputeAllocated: %v", err)
	}

	oat := pool[catalogdomain.CategoryMilk]["oat"]
	if oat.Allocated != 12 {
		t.Errorf("oat allocated = %v, want 12 (5 default + 7 requested)", oat.Allocated)
	}
	if oat.Available != 8 {
		t.Errorf("oat available = %v, want 8", oat.Available)
	}

	whole := pool[catalogdomain.CategoryMilk]["whole"]
	if whole.Allocated != 0 {
		t.Errorf("whole allocated = %v, want 0 for unavailable item", whole.Allocated)
	}
	if whole.Unit != "L" {
		t.Errorf("whole unit = %q, want seeded default L", whole.Unit)
	}
}

func TestServiceDayScenario(t *testing.T) {
	env := newTestEnv(t, 1)
	ctx := context.Background()

	env.makeAvailable(t, "1", catalogdomain.CategoryMilk, "oat")
	if _, err := env.sync.SyncStation(ctx, "1"); err != nil {
		t.Fatalf("morning sync: %v", err)
	}

	// Orders consume 4.5 L over the day
	ledger, _ := env.ledgers.Load(ctx, "1")
	oat := ledger.Find(catalogdomain.CategoryMilk, "oat")
	oat.Amount -= 2.5
	oat.RecomputeStatus()
	if oat.Status != domain.StatusLow {
		t.Errorf("after first rush status = %s, want low", oat.Status)
	}
	oat.Amount -= 2.0
	oat.RecomputeStatus()
	if oat.Status != domain.StatusCritical {
		t.Errorf("after second rush status = %s, want critical", oat.Status)
	}
	if err := env.ledgers.Save(ctx, "1", ledger); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// An organizer hits force sync in a panic; stock must not resurrect
	result, err := env.sync.ForceSyncStation(ctx, "1")
	if err != nil {
		t.Fatalf("force sync: %v", err)
	}
	if result != ResultPreserved {
		t.Fatalf("force sync result = %s, want preserved", result)
	}

	after, _ := env.ledgers.Load(ctx, "1")
	if got := after.Find(catalogdomain.CategoryMilk, "oat").Amount; got != 0.5 {
		t.Errorf("amount after force sync = %v, want 0.5", got)
	}
}
