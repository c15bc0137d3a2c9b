package persistence

import (
	"context"
	"errors"
	"fmt"

	"catalog-server/internal/infra/sql"
	"catalog-server/internal/shared_kernel/domain"
	"catalog-server/internal/shared_kernel/persistence/internal"
	"catalog-server/internal/shared_kernel/usecases"
)

func NewTenantRepository(orm sql.ORM) (*SimpleTenantRepository, error) {
	err := orm.AutoMigrate(&internal.Tenant{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTenantRepository{
		orm: orm,
	}, nil
}

var _ usecases.TenantRepository = (*SimpleTenantRepository)(nil)

type SimpleTenantRepository struct {
	orm sql.ORM
}

func (r *SimpleTenantRepository) Create(ctx context.Context, tenant domain.Tenant) error {
	entity := internal.FromTenant(tenant)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (r *SimpleTenantRepository) GetByID(ctx context.Context, id domain.ID) (domain.Tenant, error) {
	var entity internal.Tenant
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Tenant{}, usecases.ErrTenantNotFound
	}

	if err != nil {
		return domain.Tenant{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTenantRepository) GetByName(ctx context.Context, name string) (domain.Tenant, error) {
	var entity internal.Tenant
	err := r.orm.
		WithContext(ctx).
		Where("name = ?", name).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Tenant{}, usecases.ErrTenantNotFound
	}

	if err != nil {
		return domain.Tenant{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTenantRepository) Update(ctx context.Context, tenant domain.Tenant) error {
	entity := internal.FromTenant(tenant)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	return nil
}

func (r *SimpleTenantRepository) FindAll(ctx context.Context, includeDeleted bool, pagination usecases.Pagination) ([]domain.Tenant, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.Tenant{})

	// Filter out soft-deleted tenants unless specifically requested
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting records: %w", err)
	}

	var entities []internal.Tenant
	err = query.
		Order("created_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Tenant, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
