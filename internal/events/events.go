package events

import "context"

// Notifier receives change notifications from the catalog, station
// configuration, and stock ledger write paths. Implementations fan the
// notifications out to the stock synchronizer trigger, Kafka, or both.
type Notifier interface {
	// InventoryChanged signals that the event inventory catalog changed
	InventoryChanged(ctx context.Context)

	// StationConfigChanged signals that one station's availability or
	// quantity configuration changed
	StationConfigChanged(ctx context.Context, stationID string)

	// StockUpdated signals that one station's live stock ledger changed
	StockUpdated(ctx context.Context, stationID string)
}

// Nop is a Notifier that ignores every notification
type Nop struct{}

func (Nop) InventoryChanged(context.Context)             {}
func (Nop) StationConfigChanged(context.Context, string) {}
func (Nop) StockUpdated(context.Context, string)         {}

// Fanout delivers every notification to each wrapped Notifier in order
type Fanout []Notifier

func (f Fanout) InventoryChanged(ctx context.Context) {
	for _, n := range f {
		n.InventoryChanged(ctx)
	}
}

func (f Fanout) StationConfigChanged(ctx context.Context, stationID string) {
	for _, n := range f {
		n.StationConfigChanged(ctx, stationID)
	}
}

func (f Fanout) StockUpdated(ctx context.Context, stationID string) {
	for _, n := range f {
		n.StockUpdated(ctx, stationID)
	}
}
