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

func NewProductRepository(orm sql.ORM) (*SimpleProductRepository, error) {
	err := orm.AutoMigrate(&internal.Product{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleProductRepository{
		orm: orm,
	}, nil
}

var _ usecases.ProductRepository = (*SimpleProductRepository)(nil)

type SimpleProductRepository struct {
	orm sql.ORM
}

func (r *SimpleProductRepository) Create(ctx context.Context, product domain.Product) error {
	entity := internal.FromProduct(product)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (r *SimpleProductRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Product, error) {
	var entity internal.Product
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Product{}, usecases.ErrProductNotFound
	}

	if err != nil {
		return domain.Product{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleProductRepository) FindAll(ctx context.Context, tenantID shareddomain.ID, pagination usecases.Pagination) ([]domain.Product, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.Product{}).
		Where("tenant_id = ?", tenantID.String())

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting records: %w", err)
	}

	var entities []internal.Product
	err = query.
		Order("created_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Product, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleProductRepository) Update(ctx context.Context, product domain.Product) error {
	entity := internal.FromProduct(product)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	return nil
}

func (r *SimpleProductRepository) FindByEAN(ctx context.Context, tenantID shareddomain.ID, ean string) ([]domain.Product, error) {
	var entities []internal.Product
	err := r.orm.
		WithContext(ctx).
		Where("tenant_id = ? AND ean = ?", tenantID.String(), ean).
		Order("created_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Product, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
