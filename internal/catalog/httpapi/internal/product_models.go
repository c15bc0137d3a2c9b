package internal

import (
	"time"

	"catalog-server/internal/catalog/domain"
)

// Request models
type ProductCreateRequest struct {
	CategoryID string            `json:"category_id" validate:"required"`
	Name       string            `json:"name" validate:"required,min=1,max=200"`
	Brand      string            `json:"brand,omitempty"`
	Model      string            `json:"model,omitempty"`
	SKU        string            `json:"sku,omitempty"`
	EAN        string            `json:"ean,omitempty" validate:"omitempty,len=13"`
	NCM        string            `json:"ncm,omitempty"`
	CEST       string            `json:"cest,omitempty"`
	Weight     string            `json:"weight,omitempty"`
	Specs      map[string]string `json:"specs,omitempty"`
}

type ProductUpdateRequest struct {
	Name    string            `json:"name,omitempty"`
	Brand   string            `json:"brand,omitempty"`
	Model   string            `json:"model,omitempty"`
	SKU     string            `json:"sku,omitempty"`
	EAN     string            `json:"ean,omitempty" validate:"omitempty,len=13"`
	NCM     string            `json:"ncm,omitempty"`
	CEST    string            `json:"cest,omitempty"`
	Weight  string            `json:"weight,omitempty"`
	Specs   map[string]string `json:"specs,omitempty"`
	Version int               `json:"version,omitempty"`
}

// Response models
type ProductResponse struct {
	ID         string            `json:"id"`
	TenantID   string            `json:"tenant_id"`
	CategoryID string            `json:"category_id"`
	Name       string            `json:"name"`
	Brand      string            `json:"brand,omitempty"`
	Model      string            `json:"model,omitempty"`
	SKU        string            `json:"sku,omitempty"`
	EAN        string            `json:"ean,omitempty"`
	NCM        string            `json:"ncm,omitempty"`
	CEST       string            `json:"cest,omitempty"`
	Weight     string            `json:"weight,omitempty"`
	Specs      map[string]string `json:"specs,omitempty"`
	Version    int               `json:"version"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Conversion functions
func ToProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:         product.ID.String(),
		TenantID:   product.TenantID.String(),
		CategoryID: product.CategoryID.String(),
		Name:       product.Name,
		Brand:      product.Brand,
		Model:      product.Model,
		SKU:        product.SKU,
		EAN:        product.EAN,
		NCM:        product.NCM,
		CEST:       product.CEST,
		Weight:     product.Weight,
		Specs:      product.Specs,
		Version:    product.Version,
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.UpdatedAt,
	}
}
