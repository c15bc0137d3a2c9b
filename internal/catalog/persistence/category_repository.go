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

func NewCategoryRepository(orm sql.ORM) (*SimpleCategoryRepository, error) {
	err := orm.AutoMigrate(&internal.Category{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCategoryRepository{
		orm: orm,
	}, nil
}

var _ usecases.CategoryRepository = (*SimpleCategoryRepository)(nil)

type SimpleCategoryRepository struct {
	orm sql.ORM
}

func (r *SimpleCategoryRepository) Create(ctx context.Context, category domain.Category) error {
	entity := internal.FromCategory(category)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Category, error) {
	var entity internal.Category
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Category{}, usecases.ErrCategoryNotFound
	}

	if err != nil {
		return domain.Category{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCategoryRepository) FindAll(ctx context.Context, tenantID shareddomain.ID, pagination usecases.Pagination) ([]domain.Category, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.Category{}).
		Where("tenant_id = ?", tenantID.String())

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting records: %w", err)
	}

	var entities []internal.Category
	err = query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Category, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleCategoryRepository) Update(ctx context.Context, category domain.Category) error {
	entity := internal.FromCategory(category)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Category{ID: id.String()}).
		Error()
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}
