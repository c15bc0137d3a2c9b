package usecases

import (
	"context"

	"catalog-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/shared_kernel/usecases/api_mock.go -package=usecases

type TenantService interface {
	CreateTenant(ctx context.Context, tenant domain.Tenant) error
	GetTenant(ctx context.Context, id domain.ID) (domain.Tenant, error)
	GetTenantByName(ctx context.Context, name string) (domain.Tenant, error)
	ListTenants(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Tenant, int, error)
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error
	SoftDeleteTenant(ctx context.Context, id domain.ID) error
	ActivateTenant(ctx context.Context, id domain.ID) error
	DeactivateTenant(ctx context.Context, id domain.ID) error
}
