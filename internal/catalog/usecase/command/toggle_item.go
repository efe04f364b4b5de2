package command

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
)

// ToggleItemCommand represents the command to flip an item's enabled flag
type ToggleItemCommand struct {
	Category domain.Category
	ID       string
}

// ToggleItemHandler handles toggle item commands
type ToggleItemHandler struct {
	repo     domain.Repository
	notifier events.Notifier
}

// NewToggleItemHandler creates a new toggle item handler
func NewToggleItemHandler(repo domain.Repository, notifier events.Notifier) *ToggleItemHandler {
	return &ToggleItemHandler{repo: repo, notifier: notifier}
}

// Handle executes the toggle item command. Station configs referencing the
// item are left untouched: they become inert while the item is disabled and
// pick up again when it is re-enabled.
func (h *ToggleItemHandler) Handle(ctx context.Context, cmd ToggleItemCommand) (*domain.Item, error) {
	item, err := h.repo.FindItem(ctx, cmd.Category, cmd.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item %s/%s not found", cmd.Category, cmd.ID)
	}

	item.Enabled = !item.Enabled
	if err := h.repo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to toggle item: %w", err)
	}

	h.notifier.InventoryChanged(ctx)
	return item, nil
}
