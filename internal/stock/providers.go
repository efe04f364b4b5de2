package stock

import (
	stationdomain "github.com/cafeops/eventbrew/internal/station/domain"
	stationrepo "github.com/cafeops/eventbrew/internal/station/repository"
	"github.com/cafeops/eventbrew/internal/stock/domain"
	"github.com/cafeops/eventbrew/internal/stock/repository"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// ProvideLedgerRepository provides the per-station ledger repository
func ProvideLedgerRepository(store storage.Store) domain.LedgerRepository {
	return repository.NewStoreLedgerRepository(store)
}

// ProvidePoolRepository provides the event pool repository
func ProvidePoolRepository(store storage.Store) domain.PoolRepository {
	return repository.NewStorePoolRepository(store)
}

// ProvideConfigRepository provides the station config repository used for
// recomputing pool allocation on writes
func ProvideConfigRepository(store storage.Store) stationdomain.ConfigRepository {
	return stationrepo.NewTracedConfigRepository(stationrepo.NewStoreConfigRepository(store))
}
