package domain

import (
	"strconv"
	"time"

	"catalog-server/internal/infra/utils"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

// Condition is the physical state of a unit. It participates in schema
// compilation: battery health is only enforceable on used units.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionUsed    Condition = "used"
	ConditionOpenBox Condition = "open_box"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionOpenBox:
		return true
	}
	return false
}

// Unit is one physical, serialized item of a Product.
type Unit struct {
	ID            shareddomain.ID
	TenantID      shareddomain.ID
	ProductID     shareddomain.ID
	CategoryID    shareddomain.ID
	Condition     Condition
	SerialNumber  string
	IMEI1         string
	IMEI2         string
	BatteryHealth *int
	Fields        map[string]string
	Name          string
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Record flattens the unit into the field map consumed by schema validation.
// Custom field values keep their keys; well-known values use the governed
// field names.
func (u Unit) Record() map[string]string {
	record := make(map[string]string, len(u.Fields)+4)
	for key, value := range u.Fields {
		record[key] = value
	}
	record[FieldSerialNumber] = u.SerialNumber
	record[FieldIMEI1] = u.IMEI1
	record[FieldIMEI2] = u.IMEI2
	if u.BatteryHealth != nil {
		record[FieldBatteryHealth] = strconv.Itoa(*u.BatteryHealth)
	}
	return record
}

func NewUnitBuilder() *unitBuilder {
	return &unitBuilder{}
}

type unitBuilder struct {
	actions []unitHandler
}

type unitHandler func(u *Unit) error

func (b *unitBuilder) WithTenantID(tenantID shareddomain.ID) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.TenantID = tenantID
		return nil
	})
	return b
}

func (b *unitBuilder) WithProductID(productID shareddomain.ID) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.ProductID = productID
		return nil
	})
	return b
}

func (b *unitBuilder) WithCategoryID(categoryID shareddomain.ID) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.CategoryID = categoryID
		return nil
	})
	return b
}

func (b *unitBuilder) WithCondition(condition Condition) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.Condition = condition
		return nil
	})
	return b
}

func (b *unitBuilder) WithSerialNumber(serialNumber string) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.SerialNumber = serialNumber
		return nil
	})
	return b
}

func (b *unitBuilder) WithIMEIs(imei1, imei2 string) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.IMEI1 = imei1
		u.IMEI2 = imei2
		return nil
	})
	return b
}

func (b *unitBuilder) WithBatteryHealth(batteryHealth *int) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.BatteryHealth = batteryHealth
		return nil
	})
	return b
}

func (b *unitBuilder) WithFields(fields map[string]string) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.Fields = fields
		return nil
	})
	return b
}

func (b *unitBuilder) WithName(name string) *unitBuilder {
	b.actions = append(b.actions, func(u *Unit) error {
		u.Name = name
		return nil
	})
	return b
}

func (b *unitBuilder) Build() (Unit, error) {
	now := time.Now()
	result := Unit{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Condition: ConditionNew,
		Fields:    make(map[string]string),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Unit{}, err
		}
	}

	return result, nil
}
