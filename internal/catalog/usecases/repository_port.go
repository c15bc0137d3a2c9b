package usecases

import (
	"context"
	"errors"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/validation"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrInvalidCondition = errors.New("invalid unit condition")
)

// UnitValidationError carries the per-field violations of a rejected unit.
type UnitValidationError struct {
	Result validation.Result
}

func (e *UnitValidationError) Error() string {
	return "unit validation failed"
}

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Category, error)
	FindAll(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Category, int, error)
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Product, error)
	FindAll(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Product, int, error)
	Update(ctx context.Context, product domain.Product) error
	FindByEAN(ctx context.Context, tenantID shareddomain.ID, ean string) ([]domain.Product, error)
}

type UnitRepository interface {
	Create(ctx context.Context, unit domain.Unit) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Unit, error)
	FindAll(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Unit, int, error)
}
