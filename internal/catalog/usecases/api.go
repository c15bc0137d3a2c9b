package usecases

import (
	"context"

	"catalog-server/internal/catalog/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/catalog/usecases/api_mock.go -package=usecases

type CategoryService interface {
	CreateCategory(ctx context.Context, category domain.Category) error
	GetCategory(ctx context.Context, id shareddomain.ID) (domain.Category, error)
	ListCategories(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Category, int, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, id shareddomain.ID) error
	UpdateConfig(ctx context.Context, id shareddomain.ID, config domain.CategoryConfig) (domain.Category, error)
	AddCustomField(ctx context.Context, id shareddomain.ID, field domain.CustomField) (domain.CustomField, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	GetProduct(ctx context.Context, id shareddomain.ID) (domain.Product, error)
	ListProducts(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Product, int, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	SearchByEAN(ctx context.Context, tenantID shareddomain.ID, ean string) ([]domain.Product, error)
}

type UnitService interface {
	CreateUnit(ctx context.Context, unit domain.Unit) (domain.Unit, error)
	GetUnit(ctx context.Context, id shareddomain.ID) (domain.Unit, error)
	ListUnits(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Unit, int, error)
	PrefillFromEAN(ctx context.Context, tenantID, categoryID shareddomain.ID, ean string) (map[string]string, error)
}
