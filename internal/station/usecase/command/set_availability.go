package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/station/domain"
)

// SetAvailabilityCommand represents the command to toggle an item's
// availability at a station
type SetAvailabilityCommand struct {
	StationID string
	Category  catalogdomain.Category
	ItemID    string
	Available bool
}

// SetAvailabilityHandler handles set availability commands
type SetAvailabilityHandler struct {
	configs  domain.ConfigRepository
	notifier events.Notifier
}

// NewSetAvailabilityHandler creates a new set availability handler
func NewSetAvailabilityHandler(configs domain.ConfigRepository, notifier events.Notifier) *SetAvailabilityHandler {
	return &SetAvailabilityHandler{configs: configs, notifier: notifier}
}

// Handle executes the set availability command
func (h *SetAvailabilityHandler) Handle(ctx context.Context, cmd SetAvailabilityCommand) error {
	if cmd.StationID == "" {
		return fmt.Errorf("station_id is required")
	}
	if !cmd.Category.IsValid() {
		return fmt.Errorf("unknown category: %s", cmd.Category)
	}
	if cmd.ItemID == "" {
		return fmt.Errorf("item_id is required")
	}

	if err := h.configs.SetAvailability(ctx, cmd.StationID, cmd.Category, cmd.ItemID, cmd.Available); err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}

	h.notifier.StationConfigChanged(ctx, cmd.StationID)
	return nil
}
