package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog-server/internal/catalog/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

func NewProductService(repository ProductRepository, categories CategoryRepository) *SimpleProductService {
	return &SimpleProductService{
		repository: repository,
		categories: categories,
	}
}

var _ ProductService = &SimpleProductService{}

type SimpleProductService struct {
	repository ProductRepository
	categories CategoryRepository
}

func (s *SimpleProductService) CreateProduct(ctx context.Context, product domain.Product) error {
	_, err := s.categories.GetByID(ctx, product.CategoryID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("getting category: %w", err)
	}

	err = s.repository.Create(ctx, product)
	if err != nil {
		slog.Error("creating product", slog.String("error", err.Error()))
		return fmt.Errorf("creating product: %w", err)
	}

	slog.Info("product created successfully",
		slog.String("id", product.ID.String()),
		slog.String("ean", product.EAN))

	return nil
}

func (s *SimpleProductService) GetProduct(ctx context.Context, id shareddomain.ID) (domain.Product, error) {
	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		slog.Error("getting product", slog.String("error", err.Error()))
		return domain.Product{}, fmt.Errorf("getting product: %w", err)
	}

	return product, nil
}

func (s *SimpleProductService) ListProducts(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Product, int, error) {
	products, total, err := s.repository.FindAll(ctx, tenantID, pagination)
	if err != nil {
		slog.Error("listing products", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}

	return products, total, nil
}

func (s *SimpleProductService) UpdateProduct(ctx context.Context, product domain.Product) error {
	existing, err := s.repository.GetByID(ctx, product.ID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("getting product: %w", err)
	}

	if product.Name != "" {
		existing.Name = product.Name
	}
	if product.Brand != "" {
		existing.Brand = product.Brand
	}
	if product.Model != "" {
		existing.Model = product.Model
	}
	if product.SKU != "" {
		existing.SKU = product.SKU
	}
	if product.EAN != "" {
		existing.EAN = product.EAN
	}
	if product.NCM != "" {
		existing.NCM = product.NCM
	}
	if product.CEST != "" {
		existing.CEST = product.CEST
	}
	if product.Weight != "" {
		existing.Weight = product.Weight
	}
	if product.Specs != nil {
		existing.Specs = product.Specs
	}

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("updating product", slog.String("error", err.Error()))
		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

// SearchByEAN returns every product sharing the lookup code; zero, one and
// many matches are all legitimate outcomes.
func (s *SimpleProductService) SearchByEAN(ctx context.Context, tenantID shareddomain.ID, ean string) ([]domain.Product, error) {
	products, err := s.repository.FindByEAN(ctx, tenantID, ean)
	if err != nil {
		slog.Error("searching products by ean", slog.String("error", err.Error()))
		return nil, fmt.Errorf("searching products by ean: %w", err)
	}

	return products, nil
}
