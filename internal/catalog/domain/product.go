package domain

import (
	"time"

	"catalog-server/internal/infra/utils"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

// Product is the base catalog record shared by every physical unit with the
// same EAN. Per-unit values (serial, IMEI, condition) live on Unit.
type Product struct {
	ID         shareddomain.ID
	TenantID   shareddomain.ID
	CategoryID shareddomain.ID
	Name       string
	Brand      string
	Model      string
	SKU        string
	EAN        string
	NCM        string
	CEST       string
	Weight     string
	Specs      map[string]string
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewProductBuilder() *productBuilder {
	return &productBuilder{}
}

type productBuilder struct {
	actions []productHandler
}

type productHandler func(p *Product) error

func (b *productBuilder) WithTenantID(tenantID shareddomain.ID) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.TenantID = tenantID
		return nil
	})
	return b
}

func (b *productBuilder) WithCategoryID(categoryID shareddomain.ID) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.CategoryID = categoryID
		return nil
	})
	return b
}

func (b *productBuilder) WithName(name string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.Name = name
		return nil
	})
	return b
}

func (b *productBuilder) WithBrand(brand string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.Brand = brand
		return nil
	})
	return b
}

func (b *productBuilder) WithModel(model string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.Model = model
		return nil
	})
	return b
}

func (b *productBuilder) WithSKU(sku string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.SKU = sku
		return nil
	})
	return b
}

func (b *productBuilder) WithEAN(ean string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.EAN = ean
		return nil
	})
	return b
}

func (b *productBuilder) WithFiscalCodes(ncm, cest string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.NCM = ncm
		p.CEST = cest
		return nil
	})
	return b
}

func (b *productBuilder) WithWeight(weight string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.Weight = weight
		return nil
	})
	return b
}

func (b *productBuilder) WithSpecs(specs map[string]string) *productBuilder {
	b.actions = append(b.actions, func(p *Product) error {
		p.Specs = specs
		return nil
	})
	return b
}

func (b *productBuilder) Build() (Product, error) {
	now := time.Now()
	result := Product{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Specs:     make(map[string]string),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Product{}, err
		}
	}

	return result, nil
}
