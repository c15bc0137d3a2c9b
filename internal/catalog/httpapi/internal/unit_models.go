package internal

import (
	"time"

	"catalog-server/internal/catalog/domain"
)

// Request models
type UnitCreateRequest struct {
	ProductID     string            `json:"product_id" validate:"required"`
	CategoryID    string            `json:"category_id" validate:"required"`
	Condition     string            `json:"condition" validate:"required,oneof=new used open_box"`
	SerialNumber  string            `json:"serial_number,omitempty"`
	IMEI1         string            `json:"imei1,omitempty"`
	IMEI2         string            `json:"imei2,omitempty"`
	BatteryHealth *int              `json:"battery_health,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Name          string            `json:"name,omitempty"`
}

// Response models
type UnitResponse struct {
	ID            string            `json:"id"`
	TenantID      string            `json:"tenant_id"`
	ProductID     string            `json:"product_id"`
	CategoryID    string            `json:"category_id"`
	Condition     string            `json:"condition"`
	SerialNumber  string            `json:"serial_number,omitempty"`
	IMEI1         string            `json:"imei1,omitempty"`
	IMEI2         string            `json:"imei2,omitempty"`
	BatteryHealth *int              `json:"battery_health,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Name          string            `json:"name,omitempty"`
	Version       int               `json:"version"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// UnitValidationResponse is the 422 payload listing every violated field.
type UnitValidationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// Conversion functions
func ToUnitResponse(unit domain.Unit) UnitResponse {
	return UnitResponse{
		ID:            unit.ID.String(),
		TenantID:      unit.TenantID.String(),
		ProductID:     unit.ProductID.String(),
		CategoryID:    unit.CategoryID.String(),
		Condition:     string(unit.Condition),
		SerialNumber:  unit.SerialNumber,
		IMEI1:         unit.IMEI1,
		IMEI2:         unit.IMEI2,
		BatteryHealth: unit.BatteryHealth,
		Fields:        unit.Fields,
		Name:          unit.Name,
		Version:       unit.Version,
		CreatedAt:     unit.CreatedAt,
		UpdatedAt:     unit.UpdatedAt,
	}
}
