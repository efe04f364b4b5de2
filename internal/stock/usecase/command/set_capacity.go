package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/stock/domain"
)

// SetCapacityCommand represents the command to change one entry's capacity
type SetCapacityCommand struct {
	StationID   string
	Category    catalogdomain.Category
	ItemID      string
	NewCapacity float64
}

// SetCapacityHandler handles set capacity commands
type SetCapacityHandler struct {
	ledgers  domain.LedgerRepository
	notifier events.Notifier
}

// NewSetCapacityHandler creates a new set capacity handler
func NewSetCapacityHandler(ledgers domain.LedgerRepository, notifier events.Notifier) *SetCapacityHandler {
	return &SetCapacityHandler{ledgers: ledgers, notifier: notifier}
}

// Handle executes the set capacity command. The new capacity must cover the
// current amount; thresholds are rescaled to keep their percentage of
// capacity.
func (h *SetCapacityHandler) Handle(ctx context.Context, cmd SetCapacityCommand) error {
	if cmd.StationID == "" {
		return fmt.Errorf("station_id is required")
	}
	if cmd.NewCapacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}

	ledger, err := h.ledgers.Load(ctx, cmd.StationID)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	entry := ledger.Find(cmd.Category, cmd.ItemID)
	if entry == nil {
		return fmt.Errorf("item %s/%s not stocked at station %s", cmd.Category, cmd.ItemID, cmd.StationID)
	}

	if cmd.NewCapacity < entry.Amount {
		return fmt.Errorf("capacity %.2f is below current amount %.2f", cmd.NewCapacity, entry.Amount)
	}

	if entry.Capacity > 0 {
		ratio := cmd.NewCapacity / entry.Capacity
		entry.LowThreshold *= ratio
		entry.CriticalThreshold *= ratio
	}
	entry.Capacity = cmd.NewCapacity
	entry.RecomputeStatus()

	if err := h.ledgers.Save(ctx, cmd.StationID, ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	h.notifier.StockUpdated(ctx, cmd.StationID)
	return nil
}
