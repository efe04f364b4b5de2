package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/stock/domain"
	"github.com/cafeops/eventbrew/pkg/logger"
)

// DecrementStockCommand represents the command to consume stock when an
// order completes
type DecrementStockCommand struct {
	StationID string
	Category  catalogdomain.Category
	ItemID    string
	Amount    float64
}

// DecrementStockHandler handles decrement stock commands
type DecrementStockHandler struct {
	ledgers  domain.LedgerRepository
	notifier events.Notifier
}

// NewDecrementStockHandler creates a new decrement stock handler
func NewDecrementStockHandler(ledgers domain.LedgerRepository, notifier events.Notifier) *DecrementStockHandler {
	return &DecrementStockHandler{ledgers: ledgers, notifier: notifier}
}

// Handle executes the decrement stock command. The amount is floored at
// zero and capacity is never changed. Decrementing an item the station does
// not stock is skipped with a warning, not an error: the referencing order
// may predate a catalog edit.
func (h *DecrementStockHandler) Handle(ctx context.Context, cmd DecrementStockCommand) error {
	if cmd.StationID == "" {
		return fmt.Errorf("station_id is required")
	}
	if cmd.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	ledger, err := h.ledgers.Load(ctx, cmd.StationID)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	entry := ledger.Find(cmd.Category, cmd.ItemID)
	if entry == nil {
		logger.Warn(ctx).
			Str("station_id", cmd.StationID).
			Str("category", string(cmd.Category)).
			Str("item_id", cmd.ItemID).
			Msg("Decrement for item not in station ledger, skipping")
		return nil
	}

	entry.Amount -= cmd.Amount
	if entry.Amount < 0 {
		entry.Amount = 0
	}
	entry.RecomputeStatus()

	if err := h.ledgers.Save(ctx, cmd.StationID, ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	if entry.Status != domain.StatusGood {
		logger.Warn(ctx).
			Str("station_id", cmd.StationID).
			Str("item_id", cmd.ItemID).
			Float64("amount", entry.Amount).
			Str("status", string(entry.Status)).
			Msg("Stock running low")
	}

	h.notifier.StockUpdated(ctx, cmd.StationID)
	return nil
}
