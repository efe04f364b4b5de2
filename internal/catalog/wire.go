//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/cafeops/eventbrew/internal/catalog/delivery/http"
	"github.com/cafeops/eventbrew/internal/catalog/usecase/command"
	"github.com/cafeops/eventbrew/internal/catalog/usecase/query"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
	ProvideIDGenerator,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(store storage.Store, notifier events.Notifier) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewUpsertItemHandler,
		command.NewToggleItemHandler,
		command.NewDeleteItemHandler,
		query.NewListItemsHandler,
		http.NewCatalogHandler,
	)
	return nil, nil
}
