package station

import (
	"gorm.io/gorm"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	catalogrepo "github.com/cafeops/eventbrew/internal/catalog/repository"
	"github.com/cafeops/eventbrew/internal/station/domain"
	"github.com/cafeops/eventbrew/internal/station/repository"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// ProvideStationRepository provides the station identity repository
func ProvideStationRepository(db *gorm.DB) domain.StationRepository {
	return repository.NewGormStationRepository(db)
}

// ProvideConfigRepository provides the station config repository with tracing
func ProvideConfigRepository(store storage.Store) domain.ConfigRepository {
	return repository.NewTracedConfigRepository(repository.NewStoreConfigRepository(store))
}

// ProvideCatalogRepository provides the catalog repository used by bulk
// category updates to resolve enabled items
func ProvideCatalogRepository(store storage.Store) catalogdomain.Repository {
	return catalogrepo.NewStoreCatalogRepository(store)
}
