//go:build wireinject
// +build wireinject

package wire

import (
	"os"
	"sync"

	"catalog-server/cmd/config"
	"catalog-server/internal/catalog/httpapi"
	"catalog-server/internal/catalog/persistence"
	"catalog-server/internal/catalog/usecases"
	"catalog-server/internal/infra/sql"
	sharedHTTPAPI "catalog-server/internal/shared_kernel/httpapi"
	sharedPersistence "catalog-server/internal/shared_kernel/persistence"
	sharedUsecases "catalog-server/internal/shared_kernel/usecases"

	"github.com/google/wire"
)

func InitializeTenantController() (*sharedHTTPAPI.TenantController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		sharedPersistence.NewTenantRepository,
		wire.Bind(new(sharedUsecases.TenantRepository), new(*sharedPersistence.SimpleTenantRepository)),
		sharedUsecases.NewTenantService,
		wire.Bind(new(sharedUsecases.TenantService), new(*sharedUsecases.SimpleTenantService)),
		sharedHTTPAPI.NewTenantController,
	)
	return nil, nil
}

func InitializeCategoryController() (*httpapi.CategoryController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewCategoryRepository,
		wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)),
		usecases.NewCategoryService,
		wire.Bind(new(usecases.CategoryService), new(*usecases.SimpleCategoryService)),
		httpapi.NewCategoryController,
	)
	return nil, nil
}

func InitializeProductController() (*httpapi.ProductController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewProductRepository,
		wire.Bind(new(usecases.ProductRepository), new(*persistence.SimpleProductRepository)),
		persistence.NewCategoryRepository,
		wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)),
		usecases.NewProductService,
		wire.Bind(new(usecases.ProductService), new(*usecases.SimpleProductService)),
		httpapi.NewProductController,
	)
	return nil, nil
}

func InitializeUnitController() (*httpapi.UnitController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewUnitRepository,
		wire.Bind(new(usecases.UnitRepository), new(*persistence.SimpleUnitRepository)),
		persistence.NewCategoryRepository,
		wire.Bind(new(usecases.CategoryRepository), new(*persistence.SimpleCategoryRepository)),
		persistence.NewProductRepository,
		wire.Bind(new(usecases.ProductRepository), new(*persistence.SimpleProductRepository)),
		usecases.NewUnitService,
		wire.Bind(new(usecases.UnitService), new(*usecases.SimpleUnitService)),
		httpapi.NewUnitController,
	)
	return nil, nil
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

var provideDatabaseOnce sync.Once
var databaseInstance sql.ORM

// provideDatabase hands every injector the same ORM so all repositories
// see one database, in memory mode included.
func provideDatabase(config config.AppConfig) sql.ORM {
	provideDatabaseOnce.Do(func() {
		env, ok := os.LookupEnv("ENV")
		if !ok {
			env = "production"
		}

		if env == "local" {
			orm, err := sql.NewMemoryORM()
			if err != nil {
				panic(err)
			}

			databaseInstance = orm
			return
		}

		orm, err := sql.NewPosgreORM(config.Postgresql.DSN)
		if err != nil {
			panic(err)
		}

		databaseInstance = orm
	})

	return databaseInstance
}
