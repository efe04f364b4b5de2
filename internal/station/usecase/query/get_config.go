package query

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/station/domain"
)

// GetConfigQuery represents the query to fetch a station's configuration
type GetConfigQuery struct {
	StationID string
}

// GetConfigHandler handles get config queries
type GetConfigHandler struct {
	configs domain.ConfigRepository
}

// NewGetConfigHandler creates a new get config handler
func NewGetConfigHandler(configs domain.ConfigRepository) *GetConfigHandler {
	return &GetConfigHandler{configs: configs}
}

// Handle executes the get config query
func (h *GetConfigHandler) Handle(ctx context.Context, q GetConfigQuery) (domain.Config, error) {
	if q.StationID == "" {
		return nil, fmt.Errorf("station_id is required")
	}

	config, err := h.configs.GetConfig(ctx, q.StationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}
