package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"catalog-server/internal/catalog/domain"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

type Category struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Version     int       `json:"version"`
	TenantID    string    `json:"tenant_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Config      Config    `json:"config"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Config stores the governance model as a JSON text column. The engine is
// its only producer and consumer; the database treats it opaquely.
type Config domain.CategoryConfig

func (c Config) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Config) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*c = Config{}
		return nil
	default:
		return errors.New("invalid type for config")
	}

	return json.Unmarshal(data, c)
}

func (c Category) ToDomain() domain.Category {
	return domain.Category{
		ID:          shareddomain.ID(c.ID),
		TenantID:    shareddomain.ID(c.TenantID),
		Name:        c.Name,
		Description: c.Description,
		Config:      domain.CategoryConfig(c.Config).Normalize(),
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCategory(value domain.Category) Category {
	return Category{
		ID:          value.ID.String(),
		Version:     value.Version,
		TenantID:    value.TenantID.String(),
		Name:        value.Name,
		Description: value.Description,
		Config:      Config(value.Config),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}
