//go:build wireinject
// +build wireinject

package station

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/station/delivery/http"
	"github.com/cafeops/eventbrew/internal/station/usecase/command"
	"github.com/cafeops/eventbrew/internal/station/usecase/query"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStationRepository,
	ProvideConfigRepository,
	ProvideCatalogRepository,
)

// InitializeHTTPHandler initializes the station HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, store storage.Store, notifier events.Notifier) (*http.StationHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateStationHandler,
		command.NewUpdateStationHandler,
		command.NewDeleteStationHandler,
		command.NewSetAvailabilityHandler,
		command.NewSetQuantityHandler,
		command.NewCopyConfigHandler,
		command.NewBulkSetCategoryHandler,
		query.NewListStationsHandler,
		query.NewGetConfigHandler,
		http.NewStationHandler,
	)
	return nil, nil
}
