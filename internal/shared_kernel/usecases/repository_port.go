package usecases

import (
	"context"
	"errors"

	"catalog-server/internal/shared_kernel/domain"
)

var (
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrTenantDuplicated      = errors.New("tenant already exists")
	ErrTenantSoftDeleted     = errors.New("tenant is soft deleted")
	ErrTenantVersionConflict = errors.New("tenant version conflict")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type TenantRepository interface {
	Create(ctx context.Context, tenant domain.Tenant) error
	GetByID(ctx context.Context, id domain.ID) (domain.Tenant, error)
	GetByName(ctx context.Context, name string) (domain.Tenant, error)
	Update(ctx context.Context, tenant domain.Tenant) error
	FindAll(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Tenant, int, error)
}
