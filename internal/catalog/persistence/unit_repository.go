package persistence

import (
	"context"
	"errors"
	"fmt"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/persistence/internal"
	"catalog-server/internal/catalog/usecases"
	"catalog-server/internal/infra/sql"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

func NewUnitRepository(orm sql.ORM) (*SimpleUnitRepository, error) {
	err := orm.AutoMigrate(&internal.Unit{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleUnitRepository{
		orm: orm,
	}, nil
}

var _ usecases.UnitRepository = (*SimpleUnitRepository)(nil)

type SimpleUnitRepository struct {
	orm sql.ORM
}

func (r *SimpleUnitRepository) Create(ctx context.Context, unit domain.Unit) error {
	entity := internal.FromUnit(unit)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (r *SimpleUnitRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Unit, error) {
	var entity internal.Unit
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Unit{}, usecases.ErrUnitNotFound
	}

	if err != nil {
		return domain.Unit{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUnitRepository) FindAll(ctx context.Context, tenantID shareddomain.ID, pagination usecases.Pagination) ([]domain.Unit, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.Unit{}).
		Where("tenant_id = ?", tenantID.String())

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting records: %w", err)
	}

	var entities []internal.Unit
	err = query.
		Order("created_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Unit, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
