package query

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/stock/domain"
)

// GetPoolQuery represents the query to fetch the event-wide stock pool
type GetPoolQuery struct{}

// GetPoolHandler handles get pool queries
type GetPoolHandler struct {
	pool domain.PoolRepository
}

// NewGetPoolHandler creates a new get pool handler
func NewGetPoolHandler(pool domain.PoolRepository) *GetPoolHandler {
	return &GetPoolHandler{pool: pool}
}

// Handle executes the get pool query
func (h *GetPoolHandler) Handle(ctx context.Context, _ GetPoolQuery) (domain.Pool, error) {
	pool, err := h.pool.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock pool: %w", err)
	}

	return pool, nil
}
