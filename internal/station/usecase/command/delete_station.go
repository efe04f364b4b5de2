package command

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/station/domain"
)

// DeleteStationCommand represents the command to delete a station
type DeleteStationCommand struct {
	ID uint
}

// DeleteStationHandler handles delete station commands
type DeleteStationHandler struct {
	repo domain.StationRepository
}

// NewDeleteStationHandler creates a new delete station handler
func NewDeleteStationHandler(repo domain.StationRepository) *DeleteStationHandler {
	return &DeleteStationHandler{repo: repo}
}

// Handle executes the delete station command
func (h *DeleteStationHandler) Handle(ctx context.Context, cmd DeleteStationCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}

	return nil
}
