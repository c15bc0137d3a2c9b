package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog-server/internal/catalog/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

func NewCategoryService(repository CategoryRepository) *SimpleCategoryService {
	return &SimpleCategoryService{
		repository: repository,
	}
}

var _ CategoryService = &SimpleCategoryService{}

type SimpleCategoryService struct {
	repository CategoryRepository
}

func (s *SimpleCategoryService) CreateCategory(ctx context.Context, category domain.Category) error {
	if err := category.Config.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	category.Config = category.Config.Normalize()

	err := s.repository.Create(ctx, category)
	if err != nil {
		slog.Error("creating category", slog.String("error", err.Error()))
		return fmt.Errorf("creating category: %w", err)
	}

	slog.Info("category created successfully",
		slog.String("id", category.ID.String()),
		slog.String("name", category.Name))

	return nil
}

func (s *SimpleCategoryService) GetCategory(ctx context.Context, id shareddomain.ID) (domain.Category, error) {
	category, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		slog.Error("getting category", slog.String("error", err.Error()))
		return domain.Category{}, fmt.Errorf("getting category: %w", err)
	}

	return category, nil
}

func (s *SimpleCategoryService) ListCategories(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Category, int, error) {
	categories, total, err := s.repository.FindAll(ctx, tenantID, pagination)
	if err != nil {
		slog.Error("listing categories", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing categories: %w", err)
	}

	return categories, total, nil
}

func (s *SimpleCategoryService) UpdateCategory(ctx context.Context, category domain.Category) error {
	existing, err := s.repository.GetByID(ctx, category.ID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("getting category: %w", err)
	}

	if category.Name != "" {
		existing.Name = category.Name
	}
	if category.Description != "" {
		existing.Description = category.Description
	}

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("updating category", slog.String("error", err.Error()))
		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (s *SimpleCategoryService) DeleteCategory(ctx context.Context, id shareddomain.ID) error {
	_, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("getting category: %w", err)
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting category", slog.String("error", err.Error()))
		return fmt.Errorf("deleting category: %w", err)
	}

	slog.Info("category deleted successfully", slog.String("id", id.String()))
	return nil
}

// UpdateConfig replaces the whole governance config in one read-modify-write.
// There is no optimistic-concurrency check; the last editor wins.
func (s *SimpleCategoryService) UpdateConfig(ctx context.Context, id shareddomain.ID, config domain.CategoryConfig) (domain.Category, error) {
	category, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, fmt.Errorf("getting category: %w", err)
	}

	if err := config.Validate(); err != nil {
		return domain.Category{}, fmt.Errorf("validating config: %w", err)
	}

	category.Config = config.Normalize()

	err = s.repository.Update(ctx, category)
	if err != nil {
		slog.Error("updating category config", slog.String("error", err.Error()))
		return domain.Category{}, fmt.Errorf("updating category config: %w", err)
	}

	slog.Info("category config updated", slog.String("id", id.String()))
	return category, nil
}

// AddCustomField appends the field to the category config unless a field
// with the same generated key already exists, in which case the existing
// descriptor is returned untouched.
func (s *SimpleCategoryService) AddCustomField(ctx context.Context, id shareddomain.ID, field domain.CustomField) (domain.CustomField, error) {
	category, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return domain.CustomField{}, ErrCategoryNotFound
		}
		return domain.CustomField{}, fmt.Errorf("getting category: %w", err)
	}

	result, added := category.Config.EnsureCustomField(field)
	if !added {
		slog.Info("custom field key already exists, reusing",
			slog.String("category_id", id.String()),
			slog.String("key", result.Key))
		return result, nil
	}

	err = s.repository.Update(ctx, category)
	if err != nil {
		slog.Error("adding custom field", slog.String("error", err.Error()))
		return domain.CustomField{}, fmt.Errorf("adding custom field: %w", err)
	}

	slog.Info("custom field added",
		slog.String("category_id", id.String()),
		slog.String("key", result.Key))

	return result, nil
}
