//go:build wireinject
// +build wireinject

package wire

import (
	catalogPersistence "catalog-server/internal/catalog/persistence"
	catalogUsecases "catalog-server/internal/catalog/usecases"
	"catalog-server/internal/infra/async"
	"catalog-server/internal/intake/httpapi"
	"catalog-server/internal/intake/usecases"

	"github.com/google/wire"
)

// InitializeImportService is the one injector returning a concrete type.
// The caller shares the instance between the controller and the janitor
// so both operate on the same session map.
func InitializeImportService(broker async.InternalBroker) (*usecases.SimpleImportService, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		catalogPersistence.NewProductRepository,
		wire.Bind(new(catalogUsecases.ProductRepository), new(*catalogPersistence.SimpleProductRepository)),
		catalogPersistence.NewCategoryRepository,
		wire.Bind(new(catalogUsecases.CategoryRepository), new(*catalogPersistence.SimpleCategoryRepository)),
		catalogPersistence.NewUnitRepository,
		wire.Bind(new(catalogUsecases.UnitRepository), new(*catalogPersistence.SimpleUnitRepository)),
		catalogUsecases.NewProductService,
		wire.Bind(new(usecases.ProductFinder), new(*catalogUsecases.SimpleProductService)),
		catalogUsecases.NewUnitService,
		wire.Bind(new(usecases.UnitCreator), new(*catalogUsecases.SimpleUnitService)),
		usecases.NewImportService,
	)
	return nil, nil
}

func InitializeImportProgressWebSocketController(broker async.InternalBroker) (*httpapi.ImportProgressWebSocketController, error) {
	wire.Build(
		httpapi.NewImportProgressWebSocketController,
	)
	return nil, nil
}
