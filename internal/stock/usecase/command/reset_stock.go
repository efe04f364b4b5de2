package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/stock/domain"
)

// ResetStockCommand represents a manual organizer correction of one entry's
// current amount
type ResetStockCommand struct {
	StationID string
	Category  catalogdomain.Category
	ItemID    string
	NewAmount float64
}

// ResetStockHandler handles reset stock commands
type ResetStockHandler struct {
	ledgers  domain.LedgerRepository
	notifier events.Notifier
}

// NewResetStockHandler creates a new reset stock handler
func NewResetStockHandler(ledgers domain.LedgerRepository, notifier events.Notifier) *ResetStockHandler {
	return &ResetStockHandler{ledgers: ledgers, notifier: notifier}
}

// Handle executes the reset stock command, clamping to [0, capacity]
func (h *ResetStockHandler) Handle(ctx context.Context, cmd ResetStockCommand) error {
	if cmd.StationID == "" {
		return fmt.Errorf("station_id is required")
	}
	if cmd.NewAmount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}

	ledger, err := h.ledgers.Load(ctx, cmd.StationID)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	entry := ledger.Find(cmd.Category, cmd.ItemID)
	if entry == nil {
		return fmt.Errorf("item %s/%s not stocked at station %s", cmd.Category, cmd.ItemID, cmd.StationID)
	}

	entry.Amount = cmd.NewAmount
	if entry.Amount > entry.Capacity {
		entry.Amount = entry.Capacity
	}
	entry.RecomputeStatus()

	if err := h.ledgers.Save(ctx, cmd.StationID, ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	h.notifier.StockUpdated(ctx, cmd.StationID)
	return nil
}
