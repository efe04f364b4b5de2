package query

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/station/domain"
)

// ListStationsQuery represents the query to list stations
type ListStationsQuery struct {
	Limit  int
	Offset int
}

// ListStationsHandler handles list stations queries
type ListStationsHandler struct {
	repo domain.StationRepository
}

// NewListStationsHandler creates a new list stations handler
func NewListStationsHandler(repo domain.StationRepository) *ListStationsHandler {
	return &ListStationsHandler{repo: repo}
}

// Handle executes the list stations query
func (h *ListStationsHandler) Handle(ctx context.Context, q ListStationsQuery) ([]domain.Station, error) {
	if q.Limit == 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}

	stations, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}

	return stations, nil
}
