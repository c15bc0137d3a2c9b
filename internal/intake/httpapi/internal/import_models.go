package internal

import (
	"time"

	catalogdomain "catalog-server/internal/catalog/domain"
	"catalog-server/internal/intake/domain"
)

// Response models
type ImportSessionResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	State     string    `json:"state"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RowValidationResponse struct {
	Row      int      `json:"row"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

type BaseProductResponse struct {
	ID         string            `json:"id"`
	CategoryID string            `json:"category_id"`
	Name       string            `json:"name"`
	Brand      string            `json:"brand,omitempty"`
	Model      string            `json:"model,omitempty"`
	EAN        string            `json:"ean,omitempty"`
	Specs      map[string]string `json:"specs,omitempty"`
}

type RowPreviewResponse struct {
	Row         int                   `json:"row"`
	Values      map[string]string     `json:"values"`
	BaseProduct *BaseProductResponse  `json:"base_product,omitempty"`
	Merged      map[string]string     `json:"merged,omitempty"`
	Validation  RowValidationResponse `json:"validation"`
}

type RowErrorResponse struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type CommitResultResponse struct {
	Total   int                `json:"total"`
	Success int                `json:"success"`
	Failed  int                `json:"failed"`
	Errors  []RowErrorResponse `json:"errors,omitempty"`
}

// Conversion functions
func ToImportSessionResponse(session domain.ImportSession) ImportSessionResponse {
	return ImportSessionResponse{
		ID:        session.ID.String(),
		TenantID:  session.TenantID.String(),
		State:     string(session.State),
		RowCount:  len(session.Rows),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func toBaseProductResponse(product catalogdomain.Product) BaseProductResponse {
	return BaseProductResponse{
		ID:         product.ID.String(),
		CategoryID: product.CategoryID.String(),
		Name:       product.Name,
		Brand:      product.Brand,
		Model:      product.Model,
		EAN:        product.EAN,
		Specs:      product.Specs,
	}
}

func ToRowPreviewResponse(preview domain.RowPreview) RowPreviewResponse {
	response := RowPreviewResponse{
		Row:    preview.Row.Index,
		Values: preview.Row.Values,
		Merged: preview.Merged,
		Validation: RowValidationResponse{
			Row:      preview.Validation.Row,
			Valid:    preview.Validation.Valid(),
			Errors:   preview.Validation.Errors,
			Warnings: preview.Validation.Warnings,
		},
	}

	if preview.BaseProduct != nil {
		base := toBaseProductResponse(*preview.BaseProduct)
		response.BaseProduct = &base
	}

	return response
}

func ToCommitResultResponse(result domain.CommitResult) CommitResultResponse {
	response := CommitResultResponse{
		Total:   result.Total,
		Success: result.Success,
		Failed:  result.Failed,
	}
	for _, rowErr := range result.Errors {
		response.Errors = append(response.Errors, RowErrorResponse{Row: rowErr.Row, Message: rowErr.Message})
	}
	return response
}
