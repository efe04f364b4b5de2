package query

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/stock/domain"
)

// GetLedgerQuery represents the query to fetch one station's stock ledger
type GetLedgerQuery struct {
	StationID string
}

// GetLedgerHandler handles get ledger queries
type GetLedgerHandler struct {
	ledgers domain.LedgerRepository
}

// NewGetLedgerHandler creates a new get ledger handler
func NewGetLedgerHandler(ledgers domain.LedgerRepository) *GetLedgerHandler {
	return &GetLedgerHandler{ledgers: ledgers}
}

// Handle executes the get ledger query
func (h *GetLedgerHandler) Handle(ctx context.Context, q GetLedgerQuery) (domain.Ledger, error) {
	if q.StationID == "" {
		return nil, fmt.Errorf("station_id is required")
	}

	ledger, err := h.ledgers.Load(ctx, q.StationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return ledger, nil
}
