package repository

import (
	"context"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/station/domain"
	"github.com/cafeops/eventbrew/pkg/logger"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// Document keys for station configuration
const (
	KeyStationConfigs    = "station_inventory_configs"
	KeyStationQuantities = "station_inventory_quantities"
)

// availabilityDoc is the persisted shape of KeyStationConfigs:
// stationID -> category -> itemID -> available
type availabilityDoc map[string]map[catalogdomain.Category]map[string]bool

type quantityEntry struct {
	Quantity float64 `json:"quantity"`
}

// quantitiesDoc is the persisted shape of KeyStationQuantities:
// stationID -> category -> itemID -> {quantity}
type quantitiesDoc map[string]map[catalogdomain.Category]map[string]quantityEntry

// StoreConfigRepository persists station configuration as two documents on
// the shared store, mirroring the availability/quantity split the ordering
// UI reads. Every mutation is a fresh read-modify-write of the whole
// document.
type StoreConfigRepository struct {
	store storage.Store
}

// NewStoreConfigRepository creates a new store-backed config repository
func NewStoreConfigRepository(store storage.Store) *StoreConfigRepository {
	return &StoreConfigRepository{store: store}
}

func (r *StoreConfigRepository) loadAvailability(ctx context.Context) (availabilityDoc, error) {
	var doc availabilityDoc
	found, err := storage.GetJSON(ctx, r.store, KeyStationConfigs, &doc)
	if err != nil {
		logger.Warn(ctx).Err(err).
			Str("key", KeyStationConfigs).
			Msg("Persisted station configs unreadable, resetting")
		return availabilityDoc{}, nil
	}
	if !found || doc == nil {
		return availabilityDoc{}, nil
	}
	return doc, nil
}

func (r *StoreConfigRepository) loadQuantities(ctx context.Context) (quantitiesDoc, error) {
	var doc quantitiesDoc
	found, err := storage.GetJSON(ctx, r.store, KeyStationQuantities, &doc)
	if err != nil {
		logger.Warn(ctx).Err(err).
			Str("key", KeyStationQuantities).
			Msg("Persisted station quantities unreadable, resetting")
		return quantitiesDoc{}, nil
	}
	if !found || doc == nil {
		return quantitiesDoc{}, nil
	}
	return doc, nil
}

// GetConfig merges the availability and quantity documents for one station.
// A station with no stored config gets an empty map: items are opted in
// explicitly, never defaulted to available.
func (r *StoreConfigRepository) GetConfig(ctx context.Context, stationID string) (domain.Config, error) {
	avail, err := r.loadAvailability(ctx)
	if err != nil {
		return nil, err
	}
	quantities, err := r.loadQuantities(ctx)
	if err != nil {
		return nil, err
	}

	config := domain.Config{}

	for category, items := range avail[stationID] {
		for itemID, available := range items {
			entry := config.Ensure(category, itemID)
			entry.Available = available
			config[category][itemID] = entry
		}
	}
	for category, items := range quantities[stationID] {
		for itemID, q := range items {
			entry := config.Ensure(category, itemID)
			entry.RequestedQuantity = q.Quantity
			config[category][itemID] = entry
		}
	}

	return config, nil
}

// SetAvailability toggles one item at one station. Turning an item on for
// the first time seeds the category default quantity; turning it off leaves
// the stored quantity in place so re-enabling restores it.
func (r *StoreConfigRepository) SetAvailability(ctx context.Context, stationID string, category catalogdomain.Category, itemID string, available bool) error {
	avail, err := r.loadAvailability(ctx)
	if err != nil {
		return err
	}

	if avail[stationID] == nil {
		avail[stationID] = map[catalogdomain.Category]map[string]bool{}
	}
	if avail[stationID][category] == nil {
		avail[stationID][category] = map[string]bool{}
	}
	avail[stationID][category][itemID] = available

	if err := storage.SetJSON(ctx, r.store, KeyStationConfigs, avail); err != nil {
		return err
	}

	if !available {
		return nil
	}

	quantities, err := r.loadQuantities(ctx)
	if err != nil {
		return err
	}
	if _, exists := quantities[stationID][category][itemID]; exists {
		return nil
	}

	if quantities[stationID] == nil {
		quantities[stationID] = map[catalogdomain.Category]map[string]quantityEntry{}
	}
	if quantities[stationID][category] == nil {
		quantities[stationID][category] = map[string]quantityEntry{}
	}
	quantities[stationID][category][itemID] = quantityEntry{
		Quantity: domain.DefaultRequestedQuantity(category),
	}

	return storage.SetJSON(ctx, r.store, KeyStationQuantities, quantities)
}

// SetQuantity stores the requested quantity for one item, clamped to >= 0
func (r *StoreConfigRepository) SetQuantity(ctx context.Context, stationID string, category catalogdomain.Category, itemID string, quantity float64) error {
	if quantity < 0 {
		quantity = 0
	}

	quantities, err := r.loadQuantities(ctx)
	if err != nil {
		return err
	}

	if quantities[stationID] == nil {
		quantities[stationID] = map[catalogdomain.Category]map[string]quantityEntry{}
	}
	if quantities[stationID][category] == nil {
		quantities[stationID][category] = map[string]quantityEntry{}
	}
	quantities[stationID][category][itemID] = quantityEntry{Quantity: quantity}

	return storage.SetJSON(ctx, r.store, KeyStationQuantities, quantities)
}

// SetCategoryAvailability flips every listed item in one document write, so
// the bulk change never applies partially.
func (r *StoreConfigRepository) SetCategoryAvailability(ctx context.Context, stationID string, category catalogdomain.Category, itemIDs []string, available bool) error {
	avail, err := r.loadAvailability(ctx)
	if err != nil {
		return err
	}

	if avail[stationID] == nil {
		avail[stationID] = map[catalogdomain.Category]map[string]bool{}
	}
	if avail[stationID][category] == nil {
		avail[stationID][category] = map[string]bool{}
	}
	for _, id := range itemIDs {
		avail[stationID][category][id] = available
	}

	if err := storage.SetJSON(ctx, r.store, KeyStationConfigs, avail); err != nil {
		return err
	}

	if !available {
		return nil
	}

	quantities, err := r.loadQuantities(ctx)
	if err != nil {
		return err
	}

	changed := false
	for _, id := range itemIDs {
		if _, exists := quantities[stationID][category][id]; exists {
			continue
		}
		if quantities[stationID] == nil {
			quantities[stationID] = map[catalogdomain.Category]map[string]quantityEntry{}
		}
		if quantities[stationID][category] == nil {
			quantities[stationID][category] = map[string]quantityEntry{}
		}
		quantities[stationID][category][id] = quantityEntry{
			Quantity: domain.DefaultRequestedQuantity(category),
		}
		changed = true
	}

	if !changed {
		return nil
	}
	return storage.SetJSON(ctx, r.store, KeyStationQuantities, quantities)
}

// CopyConfig replaces the target station's configuration with a deep copy of
// the source station's.
func (r *StoreConfigRepository) CopyConfig(ctx context.Context, fromStationID, toStationID string) error {
	avail, err := r.loadAvailability(ctx)
	if err != nil {
		return err
	}

	copiedAvail := map[catalogdomain.Category]map[string]bool{}
	for category, items := range avail[fromStationID] {
		copiedAvail[category] = map[string]bool{}
		for id, a := range items {
			copiedAvail[category][id] = a
		}
	}
	avail[toStationID] = copiedAvail

	if err := storage.SetJSON(ctx, r.store, KeyStationConfigs, avail); err != nil {
		return err
	}

	quantities, err := r.loadQuantities(ctx)
	if err != nil {
		return err
	}

	copiedQty := map[catalogdomain.Category]map[string]quantityEntry{}
	for category, items := range quantities[fromStationID] {
		copiedQty[category] = map[string]quantityEntry{}
		for id, q := range items {
			copiedQty[category][id] = q
		}
	}
	quantities[toStationID] = copiedQty

	return storage.SetJSON(ctx, r.store, KeyStationQuantities, quantities)
}

// SumRequestedQuantities recomputes the event-wide allocation per item from
// the live documents. Only items currently marked available at a station
// count toward allocation.
func (r *StoreConfigRepository) SumRequestedQuantities(ctx context.Context) (map[catalogdomain.Category]map[string]float64, error) {
	avail, err := r.loadAvailability(ctx)
	if err != nil {
		return nil, err
	}
	quantities, err := r.loadQuantities(ctx)
	if err != nil {
		return nil, err
	}

	sums := map[catalogdomain.Category]map[string]float64{}
	for stationID, categories := range quantities {
		for category, items := range categories {
			for itemID, q := range items {
				if !avail[stationID][category][itemID] {
					continue
				}
				if sums[category] == nil {
					sums[category] = map[string]float64{}
				}
				sums[category][itemID] += q.Quantity
			}
		}
	}

	return sums, nil
}
