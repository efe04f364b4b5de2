package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/cafeops/eventbrew/internal/station/domain"
)

// CreateStationCommand represents the command to create a station
type CreateStationCommand struct {
	Name     string
	Location string
}

// CreateStationHandler handles create station commands
type CreateStationHandler struct {
	repo domain.StationRepository
}

// NewCreateStationHandler creates a new create station handler
func NewCreateStationHandler(repo domain.StationRepository) *CreateStationHandler {
	return &CreateStationHandler{repo: repo}
}

// Handle executes the create station command
func (h *CreateStationHandler) Handle(ctx context.Context, cmd CreateStationCommand) (*domain.Station, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	station := &domain.Station{
		Name:     strings.TrimSpace(cmd.Name),
		Location: cmd.Location,
		Status:   "active",
	}

	if err := h.repo.Create(station); err != nil {
		return nil, fmt.Errorf("failed to create station: %w", err)
	}

	return station, nil
}
