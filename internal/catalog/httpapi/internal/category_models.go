package internal

import (
	"time"

	"catalog-server/internal/catalog/domain"
)

// Request models
type CategoryCreateRequest struct {
	Name        string                 `json:"name" validate:"required,min=1,max=100"`
	Description string                 `json:"description" validate:"max=500"`
	Config      *domain.CategoryConfig `json:"config,omitempty"`
}

type CategoryUpdateRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type CustomFieldCreateRequest struct {
	Label            string   `json:"label" validate:"required,min=1,max=100"`
	Type             string   `json:"type,omitempty"`
	Requirement      string   `json:"requirement,omitempty"`
	Options          []string `json:"options,omitempty"`
	LookupCollection string   `json:"lookup_collection,omitempty"`
}

// Response models
type CategoryResponse struct {
	ID          string                `json:"id"`
	TenantID    string                `json:"tenant_id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Config      domain.CategoryConfig `json:"config"`
	Version     int                   `json:"version"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// Conversion functions
func ToCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		TenantID:    category.TenantID.String(),
		Name:        category.Name,
		Description: category.Description,
		Config:      category.Config,
		Version:     category.Version,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
