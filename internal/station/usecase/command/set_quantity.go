package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/station/domain"
)

// SetQuantityCommand represents the command to set an item's requested
// quantity at a station
type SetQuantityCommand struct {
	StationID string
	Category  catalogdomain.Category
	ItemID    string
	Quantity  float64
}

// SetQuantityHandler handles set quantity commands
type SetQuantityHandler struct {
	configs  domain.ConfigRepository
	notifier events.Notifier
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(configs domain.ConfigRepository, notifier events.Notifier) *SetQuantityHandler {
	return &SetQuantityHandler{configs: configs, notifier: notifier}
}

// Handle executes the set quantity command. Quantities may be staged for
// items that are not yet available.
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) error {
	if cmd.StationID == "" {
		return fmt.Errorf("station_id is required")
	}
	if !cmd.Category.IsValid() {
		return fmt.Errorf("unknown category: %s", cmd.Category)
	}
	if cmd.ItemID == "" {
		return fmt.Errorf("item_id is required")
	}
	if cmd.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}

	if err := h.configs.SetQuantity(ctx, cmd.StationID, cmd.Category, cmd.ItemID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to set quantity: %w", err)
	}

	h.notifier.StationConfigChanged(ctx, cmd.StationID)
	return nil
}
