package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	stationdomain "github.com/cafeops/eventbrew/internal/station/domain"
	"github.com/cafeops/eventbrew/internal/stock/domain"
)

// SetPoolQuantityCommand represents the command to set the event-wide total
// quantity purchased for one catalog item
type SetPoolQuantityCommand struct {
	Category catalogdomain.Category
	ItemID   string
	Quantity float64
	Unit     string
}

// SetPoolQuantityHandler handles set pool quantity commands
type SetPoolQuantityHandler struct {
	pool    domain.PoolRepository
	configs stationdomain.ConfigRepository
}

// NewSetPoolQuantityHandler creates a new set pool quantity handler
func NewSetPoolQuantityHandler(pool domain.PoolRepository, configs stationdomain.ConfigRepository) *SetPoolQuantityHandler {
	return &SetPoolQuantityHandler{pool: pool, configs: configs}
}

// Handle executes the set pool quantity command. Allocation is recomputed
// from the live station configs as part of the write, so the stored
// available figure is never derived from a stale cache.
func (h *SetPoolQuantityHandler) Handle(ctx context.Context, cmd SetPoolQuantityCommand) error {
	if !cmd.Category.IsValid() {
		return fmt.Errorf("unknown category: %s", cmd.Category)
	}
	if cmd.ItemID == "" {
		return fmt.Errorf("item_id is required")
	}
	if cmd.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}

	pool, err := h.pool.Load(ctx)
	if err != nil {
		return err
	}

	sums, err := h.configs.SumRequestedQuantities(ctx)
	if err != nil {
		return fmt.Errorf("failed to sum requested quantities: %w", err)
	}

	if pool[cmd.Category] == nil {
		pool[cmd.Category] = map[string]domain.PoolEntry{}
	}
	entry := pool[cmd.Category][cmd.ItemID]
	entry.Quantity = cmd.Quantity
	if cmd.Unit != "" {
		entry.Unit = cmd.Unit
	}
	entry.Allocated = sums[cmd.Category][cmd.ItemID]
	entry.Available = entry.Quantity - entry.Allocated
	pool[cmd.Category][cmd.ItemID] = entry

	if err := h.pool.Save(ctx, pool); err != nil {
		return fmt.Errorf("failed to save stock pool: %w", err)
	}

	return nil
}
