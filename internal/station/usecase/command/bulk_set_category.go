package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/station/domain"
)

// BulkSetCategoryCommand represents the command to set availability for
// every enabled catalog item of one category at a station
type BulkSetCategoryCommand struct {
	StationID string
	Category  catalogdomain.Category
	Available bool
}

// BulkSetCategoryHandler handles bulk set category commands
type BulkSetCategoryHandler struct {
	configs  domain.ConfigRepository
	catalog  catalogdomain.Repository
	notifier events.Notifier
}

// NewBulkSetCategoryHandler creates a new bulk set category handler
func NewBulkSetCategoryHandler(configs domain.ConfigRepository, catalog catalogdomain.Repository, notifier events.Notifier) *BulkSetCategoryHandler {
	return &BulkSetCategoryHandler{configs: configs, catalog: catalog, notifier: notifier}
}

// Handle executes the bulk set category command. The repository applies the
// change in one document write, so it never lands partially.
func (h *BulkSetCategoryHandler) Handle(ctx context.Context, cmd BulkSetCategoryCommand) error {
	if cmd.StationID == "" {
		return fmt.Errorf("station_id is required")
	}
	if !cmd.Category.IsValid() {
		return fmt.Errorf("unknown category: %s", cmd.Category)
	}

	items, err := h.catalog.ListItems(ctx, cmd.Category)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.Enabled {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	if err := h.configs.SetCategoryAvailability(ctx, cmd.StationID, cmd.Category, ids, cmd.Available); err != nil {
		return fmt.Errorf("failed to bulk set category: %w", err)
	}

	h.notifier.StationConfigChanged(ctx, cmd.StationID)
	return nil
}
