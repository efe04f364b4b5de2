//go:build wireinject
// +build wireinject

package stock

import (
	"github.com/google/wire"

	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/stock/delivery/http"
	stocksync "github.com/cafeops/eventbrew/internal/stock/sync"
	"github.com/cafeops/eventbrew/internal/stock/usecase/command"
	"github.com/cafeops/eventbrew/internal/stock/usecase/query"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideLedgerRepository,
	ProvidePoolRepository,
	ProvideConfigRepository,
)

// InitializeHTTPHandler initializes the stock HTTP handler with all dependencies
func InitializeHTTPHandler(synchronizer *stocksync.Synchronizer, store storage.Store, notifier events.Notifier) (*http.StockHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewDecrementStockHandler,
		command.NewResetStockHandler,
		command.NewSetCapacityHandler,
		command.NewSetPoolQuantityHandler,
		query.NewGetLedgerHandler,
		query.NewGetPoolHandler,
		http.NewStockHandler,
	)
	return nil, nil
}
