package query

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
)

// ListItemsQuery represents the query to list catalog items
type ListItemsQuery struct {
	Category    domain.Category // empty means all categories
	EnabledOnly bool
}

// ListItemsHandler handles list items queries
type ListItemsHandler struct {
	repo domain.Repository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.Repository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) ([]domain.Item, error) {
	if q.Category != "" && !q.Category.IsValid() {
		return nil, fmt.Errorf("unknown category: %s", q.Category)
	}

	items, err := h.repo.ListItems(ctx, q.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	if q.EnabledOnly {
		enabled := items[:0:0]
		for _, item := range items {
			if item.Enabled {
				enabled = append(enabled, item)
			}
		}
		items = enabled
	}

	return items, nil
}
