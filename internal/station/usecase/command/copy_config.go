package command

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/station/domain"
)

// CopyConfigCommand represents the command to copy one station's full
// configuration onto another
type CopyConfigCommand struct {
	FromStationID string
	ToStationID   string
}

// CopyConfigHandler handles copy config commands
type CopyConfigHandler struct {
	configs  domain.ConfigRepository
	notifier events.Notifier
}

// NewCopyConfigHandler creates a new copy config handler
func NewCopyConfigHandler(configs domain.ConfigRepository, notifier events.Notifier) *CopyConfigHandler {
	return &CopyConfigHandler{configs: configs, notifier: notifier}
}

// Handle executes the copy config command
func (h *CopyConfigHandler) Handle(ctx context.Context, cmd CopyConfigCommand) error {
	if cmd.FromStationID == "" || cmd.ToStationID == "" {
		return fmt.Errorf("source and target station ids are required")
	}
	if cmd.FromStationID == cmd.ToStationID {
		return fmt.Errorf("cannot copy a station config onto itself")
	}

	if err := h.configs.CopyConfig(ctx, cmd.FromStationID, cmd.ToStationID); err != nil {
		return fmt.Errorf("failed to copy config: %w", err)
	}

	h.notifier.StationConfigChanged(ctx, cmd.ToStationID)
	return nil
}
