package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/cafeops/eventbrew/internal/station/domain"
)

// UpdateStationCommand represents the command to update a station
type UpdateStationCommand struct {
	ID       uint
	Name     string
	Location string
	Status   string
}

// UpdateStationHandler handles update station commands
type UpdateStationHandler struct {
	repo domain.StationRepository
}

// NewUpdateStationHandler creates a new update station handler
func NewUpdateStationHandler(repo domain.StationRepository) *UpdateStationHandler {
	return &UpdateStationHandler{repo: repo}
}

// Handle executes the update station command
func (h *UpdateStationHandler) Handle(ctx context.Context, cmd UpdateStationCommand) (*domain.Station, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	station, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("station not found: %w", err)
	}

	if strings.TrimSpace(cmd.Name) != "" {
		station.Name = strings.TrimSpace(cmd.Name)
	}
	if cmd.Location != "" {
		station.Location = cmd.Location
	}
	if cmd.Status != "" {
		station.Status = cmd.Status
	}

	if err := h.repo.Update(station); err != nil {
		return nil, fmt.Errorf("failed to update station: %w", err)
	}

	return station, nil
}
