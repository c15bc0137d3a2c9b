package internal

import (
	"time"

	"catalog-server/internal/catalog/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

type Product struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Version    int       `json:"version"`
	TenantID   string    `json:"tenant_id" gorm:"index;not null"`
	CategoryID string    `json:"category_id" gorm:"index;not null"`
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	SKU        string    `json:"sku"`
	EAN        string    `json:"ean" gorm:"index"`
	NCM        string    `json:"ncm"`
	CEST       string    `json:"cest"`
	Weight     string    `json:"weight"`
	Specs      StringMap `json:"specs"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p Product) ToDomain() domain.Product {
	return domain.Product{
		ID:         shareddomain.ID(p.ID),
		TenantID:   shareddomain.ID(p.TenantID),
		CategoryID: shareddomain.ID(p.CategoryID),
		Name:       p.Name,
		Brand:      p.Brand,
		Model:      p.Model,
		SKU:        p.SKU,
		EAN:        p.EAN,
		NCM:        p.NCM,
		CEST:       p.CEST,
		Weight:     p.Weight,
		Specs:      map[string]string(p.Specs),
		Version:    p.Version,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromProduct(value domain.Product) Product {
	return Product{
		ID:         value.ID.String(),
		Version:    value.Version,
		TenantID:   value.TenantID.String(),
		CategoryID: value.CategoryID.String(),
		Name:       value.Name,
		Brand:      value.Brand,
		Model:      value.Model,
		SKU:        value.SKU,
		EAN:        value.EAN,
		NCM:        value.NCM,
		CEST:       value.CEST,
		Weight:     value.Weight,
		Specs:      StringMap(value.Specs),
		CreatedAt:  value.CreatedAt,
		UpdatedAt:  value.UpdatedAt,
	}
}
