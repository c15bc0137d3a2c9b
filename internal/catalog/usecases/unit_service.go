package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog-server/internal/catalog/domain"
	"catalog-server/internal/catalog/naming"
	"catalog-server/internal/catalog/validation"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

func NewUnitService(repository UnitRepository, categories CategoryRepository, products ProductRepository) *SimpleUnitService {
	return &SimpleUnitService{
		repository: repository,
		categories: categories,
		products:   products,
	}
}

var _ UnitService = &SimpleUnitService{}

type SimpleUnitService struct {
	repository UnitRepository
	categories CategoryRepository
	products   ProductRepository
}

// CreateUnit validates the unit against the schema compiled for its category
// and condition, generates the display name when auto-naming is enabled, and
// persists it.
func (s *SimpleUnitService) CreateUnit(ctx context.Context, unit domain.Unit) (domain.Unit, error) {
	if !unit.Condition.Valid() {
		return domain.Unit{}, ErrInvalidCondition
	}

	category, err := s.categories.GetByID(ctx, unit.CategoryID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return domain.Unit{}, ErrCategoryNotFound
		}
		return domain.Unit{}, fmt.Errorf("getting category: %w", err)
	}

	product, err := s.products.GetByID(ctx, unit.ProductID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return domain.Unit{}, ErrProductNotFound
		}
		return domain.Unit{}, fmt.Errorf("getting product: %w", err)
	}

	schema := validation.Compile(category.Config, validation.Context{Condition: unit.Condition})
	result := schema.Validate(unit.Record())
	if !result.Valid() {
		slog.Warn("unit rejected by schema",
			slog.String("category_id", category.ID.String()),
			slog.Int("violations", len(result.Errors)))
		return domain.Unit{}, &UnitValidationError{Result: result}
	}

	if category.Config.AutoNameEnabled && unit.Name == "" {
		unit.Name = naming.Generate(category.Config, namingRecord(product, unit))
	}

	err = s.repository.Create(ctx, unit)
	if err != nil {
		slog.Error("creating unit", slog.String("error", err.Error()))
		return domain.Unit{}, fmt.Errorf("creating unit: %w", err)
	}

	slog.Info("unit created successfully",
		slog.String("id", unit.ID.String()),
		slog.String("serial_number", unit.SerialNumber))

	return unit, nil
}

// PrefillFromEAN resolves the category's autofill config against the base
// products matching the scanned EAN. An empty map means nothing to prefill,
// either because autofill is disabled or no base product matched.
func (s *SimpleUnitService) PrefillFromEAN(ctx context.Context, tenantID, categoryID shareddomain.ID, ean string) (map[string]string, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("getting category: %w", err)
	}

	if !category.Config.EANAutofill.Enabled {
		return map[string]string{}, nil
	}

	products, err := s.products.FindByEAN(ctx, tenantID, ean)
	if err != nil {
		return nil, fmt.Errorf("searching products by ean: %w", err)
	}
	if len(products) == 0 {
		return map[string]string{}, nil
	}

	return domain.AutofillFromProduct(category.Config, products[0]), nil
}

func (s *SimpleUnitService) GetUnit(ctx context.Context, id shareddomain.ID) (domain.Unit, error) {
	unit, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUnitNotFound) {
			return domain.Unit{}, ErrUnitNotFound
		}
		slog.Error("getting unit", slog.String("error", err.Error()))
		return domain.Unit{}, fmt.Errorf("getting unit: %w", err)
	}

	return unit, nil
}

func (s *SimpleUnitService) ListUnits(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.Unit, int, error) {
	units, total, err := s.repository.FindAll(ctx, tenantID, pagination)
	if err != nil {
		slog.Error("listing units", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing units: %w", err)
	}

	return units, total, nil
}

// namingRecord merges product identity fields with the unit's own values.
// Product specs populate the nested map the template engine checks first.
func namingRecord(product domain.Product, unit domain.Unit) naming.Record {
	fields := unit.Record()
	fields["brand"] = product.Brand
	fields["model"] = product.Model
	fields["sku"] = product.SKU
	fields["ncm"] = product.NCM
	fields["cest"] = product.CEST
	fields["weight"] = product.Weight

	return naming.Record{
		Fields: fields,
		Specs:  product.Specs,
	}
}
