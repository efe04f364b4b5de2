package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/events"
)

// IDGenerator produces ids for newly created catalog items. Injected so
// tests can use a deterministic sequence.
type IDGenerator func() string

// UpsertItemCommand represents the command to create or update a catalog item
type UpsertItemCommand struct {
	ID            string
	Category      domain.Category
	Name          string
	Description   string
	Enabled       bool
	VolumeML      int
	ShotsRequired int
	Color         string
}

// UpsertItemHandler handles upsert item commands
type UpsertItemHandler struct {
	repo     domain.Repository
	notifier events.Notifier
	newID    IDGenerator
}

// NewUpsertItemHandler creates a new upsert item handler
func NewUpsertItemHandler(repo domain.Repository, notifier events.Notifier, newID IDGenerator) *UpsertItemHandler {
	return &UpsertItemHandler{repo: repo, notifier: notifier, newID: newID}
}

// Handle executes the upsert item command
func (h *UpsertItemHandler) Handle(ctx context.Context, cmd UpsertItemCommand) (*domain.Item, error) {
	if !cmd.Category.IsValid() {
		return nil, fmt.Errorf("unknown category: %s", cmd.Category)
	}

	if strings.TrimSpace(cmd.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	if cmd.ID == "" {
		cmd.ID = h.newID()
	}

	item := &domain.Item{
		ID:            cmd.ID,
		Category:      cmd.Category,
		Name:          strings.TrimSpace(cmd.Name),
		Description:   cmd.Description,
		Enabled:       cmd.Enabled,
		VolumeML:      cmd.VolumeML,
		ShotsRequired: cmd.ShotsRequired,
		Color:         cmd.Color,
	}

	if err := h.repo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	h.notifier.InventoryChanged(ctx)
	return item, nil
}
