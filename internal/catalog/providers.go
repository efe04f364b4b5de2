package catalog

import (
	"github.com/google/uuid"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/catalog/repository"
	"github.com/cafeops/eventbrew/internal/catalog/usecase/command"
	"github.com/cafeops/eventbrew/pkg/storage"
)

// ProvideCatalogRepository provides the catalog repository
func ProvideCatalogRepository(store storage.Store) domain.Repository {
	return repository.NewStoreCatalogRepository(store)
}

// ProvideIDGenerator provides the id generator for new catalog items
func ProvideIDGenerator() command.IDGenerator {
	return uuid.NewString
}
