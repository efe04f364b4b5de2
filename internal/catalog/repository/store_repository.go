package repository

import (
	"context"
	"fmt"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/pkg/logger"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// KeyEventInventory is the document key holding the event inventory catalog
const KeyEventInventory = "event_inventory"

// StoreCatalogRepository persists the catalog as a single document on the
// shared document store.
type StoreCatalogRepository struct {
	store storage.Store
}

// NewStoreCatalogRepository creates a new store-backed catalog repository
func NewStoreCatalogRepository(store storage.Store) *StoreCatalogRepository {
	return &StoreCatalogRepository{store: store}
}

// Load reads the full catalog. A missing document is an empty catalog; an
// unreadable document is reset to the built-in default set and logged, never
// surfaced as a hard failure.
func (r *StoreCatalogRepository) Load(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog

	found, err := storage.GetJSON(ctx, r.store, KeyEventInventory, &catalog)
	if err != nil {
		logger.Warn(ctx).Err(err).
			Str("key", KeyEventInventory).
			Msg("Persisted catalog unreadable, re-seeding defaults")

		catalog = domain.DefaultCatalog()
		if saveErr := storage.SetJSON(ctx, r.store, KeyEventInventory, catalog); saveErr != nil {
			return nil, fmt.Errorf("failed to re-seed catalog: %w", saveErr)
		}
		return catalog, nil
	}

	if !found || catalog == nil {
		return domain.Catalog{}, nil
	}
	return catalog, nil
}

// ListItems returns all items, or the items of one category when category is
// non-empty. Disabled items are included; callers filter as needed.
func (r *StoreCatalogRepository) ListItems(ctx context.Context, category domain.Category) ([]domain.Item, error) {
	catalog, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" {
		return catalog[category], nil
	}

	var items []domain.Item
	for _, c := range domain.Categories {
		items = append(items, catalog[c]...)
	}
	return items, nil
}

// FindItem returns the item with the given id, or nil when absent
func (r *StoreCatalogRepository) FindItem(ctx context.Context, category domain.Category, id string) (*domain.Item, error) {
	catalog, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Find(category, id), nil
}

// SaveItem inserts or replaces one item, keyed by (category, id)
func (r *StoreCatalogRepository) SaveItem(ctx context.Context, item *domain.Item) error {
	catalog, err := r.Load(ctx)
	if err != nil {
		return err
	}

	items := catalog[item.Category]
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, *item)
	}
	catalog[item.Category] = items

	return storage.SetJSON(ctx, r.store, KeyEventInventory, catalog)
}

// DeleteItem removes one item. Dependent station configs and stock entries
// are left in place; downstream readers skip ids missing from the catalog.
func (r *StoreCatalogRepository) DeleteItem(ctx context.Context, category domain.Category, id string) error {
	catalog, err := r.Load(ctx)
	if err != nil {
		return err
	}

	items := catalog[category]
	for i := range items {
		if items[i].ID == id {
			catalog[category] = append(items[:i:i], items[i+1:]...)
			return storage.SetJSON(ctx, r.store, KeyEventInventory, catalog)
		}
	}
	return fmt.Errorf("item %s/%s not found", category, id)
}

// EnsureSeeded writes the default catalog if none has been stored yet
func (r *StoreCatalogRepository) EnsureSeeded(ctx context.Context) error {
	_, err := r.store.Get(ctx, KeyEventInventory)
	if err == nil {
		return nil
	}
	if err != storage.ErrNotFound {
		return err
	}

	logger.Info(ctx).Msg("Seeding default event inventory catalog")
	return storage.SetJSON(ctx, r.store, KeyEventInventory, domain.DefaultCatalog())
}
