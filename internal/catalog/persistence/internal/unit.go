package internal

import (
	"time"

	"catalog-server/internal/catalog/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

type Unit struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Version       int       `json:"version"`
	TenantID      string    `json:"tenant_id" gorm:"index;not null"`
	ProductID     string    `json:"product_id" gorm:"index;not null"`
	CategoryID    string    `json:"category_id" gorm:"index;not null"`
	Condition     string    `json:"condition"`
	SerialNumber  string    `json:"serial_number" gorm:"index"`
	IMEI1         string    `json:"imei1" gorm:"index"`
	IMEI2         string    `json:"imei2"`
	BatteryHealth *int      `json:"battery_health,omitempty"`
	Fields        StringMap `json:"fields"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Unit) TableName() string {
	return "units"
}

func (u Unit) ToDomain() domain.Unit {
	return domain.Unit{
		ID:            shareddomain.ID(u.ID),
		TenantID:      shareddomain.ID(u.TenantID),
		ProductID:     shareddomain.ID(u.ProductID),
		CategoryID:    shareddomain.ID(u.CategoryID),
		Condition:     domain.Condition(u.Condition),
		SerialNumber:  u.SerialNumber,
		IMEI1:         u.IMEI1,
		IMEI2:         u.IMEI2,
		BatteryHealth: u.BatteryHealth,
		Fields:        map[string]string(u.Fields),
		Name:          u.Name,
		Version:       u.Version,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func FromUnit(value domain.Unit) Unit {
	return Unit{
		ID:            value.ID.String(),
		Version:       value.Version,
		TenantID:      value.TenantID.String(),
		ProductID:     value.ProductID.String(),
		CategoryID:    value.CategoryID.String(),
		Condition:     string(value.Condition),
		SerialNumber:  value.SerialNumber,
		IMEI1:         value.IMEI1,
		IMEI2:         value.IMEI2,
		BatteryHealth: value.BatteryHealth,
		Fields:        StringMap(value.Fields),
		Name:          value.Name,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
