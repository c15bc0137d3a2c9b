package domain

import (
	"time"

	"catalog-server/internal/infra/utils"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

type Category struct {
	ID          shareddomain.ID
	TenantID    shareddomain.ID
	Name        string
	Description string
	Config      CategoryConfig
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCategoryBuilder() *categoryBuilder {
	return &categoryBuilder{}
}

type categoryBuilder struct {
	actions []categoryHandler
}

type categoryHandler func(c *Category) error

func (b *categoryBuilder) WithTenantID(tenantID shareddomain.ID) *categoryBuilder {
	b.actions = append(b.actions, func(c *Category) error {
		c.TenantID = tenantID
		return nil
	})
	return b
}

func (b *categoryBuilder) WithName(name string) *categoryBuilder {
	b.actions = append(b.actions, func(c *Category) error {
		c.Name = name
		return nil
	})
	return b
}

func (b *categoryBuilder) WithDescription(description string) *categoryBuilder {
	b.actions = append(b.actions, func(c *Category) error {
		c.Description = description
		return nil
	})
	return b
}

func (b *categoryBuilder) WithConfig(config CategoryConfig) *categoryBuilder {
	b.actions = append(b.actions, func(c *Category) error {
		if err := config.Validate(); err != nil {
			return err
		}
		c.Config = config.Normalize()
		return nil
	})
	return b
}

func (b *categoryBuilder) Build() (Category, error) {
	now := time.Now()
	result := Category{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Config:    CategoryConfig{}.Normalize(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Category{}, err
		}
	}

	return result, nil
}
