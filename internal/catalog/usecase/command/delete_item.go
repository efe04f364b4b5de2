package command

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
)

// DeleteItemCommand represents the command to delete a catalog item
type DeleteItemCommand struct {
	Category domain.Category
	ID       string
}

// DeleteItemHandler handles delete item commands
type DeleteItemHandler struct {
	repo     domain.Repository
	notifier events.Notifier
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.Repository, notifier events.Notifier) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo, notifier: notifier}
}

// Handle executes the delete item command. No cascading delete: orphaned
// station config and stock rows are filtered out by their readers.
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("id is required")
	}

	if err := h.repo.DeleteItem(ctx, cmd.Category, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	h.notifier.InventoryChanged(ctx)
	return nil
}
