package domain

import (
	"fmt"
	"slices"
	"strings"

	"catalog-server/internal/infra/utils"
)

// FieldRequirement is the tri-state governance value for a single field.
// Absence and unknown values normalize to FieldOptional so a stored config
// never carries an ambiguous state.
type FieldRequirement string

const (
	FieldOff      FieldRequirement = "off"
	FieldOptional FieldRequirement = "optional"
	FieldRequired FieldRequirement = "required"
)

func (r FieldRequirement) Normalized() FieldRequirement {
	switch r {
	case FieldOff, FieldRequired:
		return r
	default:
		return FieldOptional
	}
}

func (r FieldRequirement) IsOff() bool {
	return r == FieldOff
}

func (r FieldRequirement) IsRequired() bool {
	return r == FieldRequired
}

// Well-known unit field names governed by every CategoryConfig.
const (
	FieldIMEI1         = "imei1"
	FieldIMEI2         = "imei2"
	FieldSerialNumber  = "serial_number"
	FieldBatteryHealth = "battery_health"
	FieldRAM           = "ram"
	FieldStorage       = "storage"
	FieldColor         = "color"
	FieldVersion       = "version"
)

var WellKnownFields = []string{
	FieldIMEI1,
	FieldIMEI2,
	FieldSerialNumber,
	FieldBatteryHealth,
	FieldRAM,
	FieldStorage,
	FieldColor,
	FieldVersion,
}

type CustomFieldType string

const (
	CustomFieldText      CustomFieldType = "text"
	CustomFieldNumber    CustomFieldType = "number"
	CustomFieldUppercase CustomFieldType = "uppercase"
	CustomFieldLowercase CustomFieldType = "lowercase"
	CustomFieldTitlecase CustomFieldType = "titlecase"
	CustomFieldCPF       CustomFieldType = "cpf"
	CustomFieldCNPJ      CustomFieldType = "cnpj"
	CustomFieldCurrency  CustomFieldType = "currency"
	CustomFieldSelect    CustomFieldType = "select"
	CustomFieldLookup    CustomFieldType = "lookup"
)

type CustomField struct {
	Key              string           `json:"key"`
	Label            string           `json:"label"`
	Type             CustomFieldType  `json:"type"`
	Requirement      FieldRequirement `json:"requirement"`
	Options          []string         `json:"options,omitempty"`
	LookupCollection string           `json:"lookup_collection,omitempty"`
}

func NewCustomFieldBuilder() *customFieldBuilder {
	return &customFieldBuilder{}
}

type customFieldBuilder struct {
	actions []customFieldHandler
}

type customFieldHandler func(f *CustomField) error

func (b *customFieldBuilder) WithLabel(label string) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.Label = label
		f.Key = utils.Slugify(label)
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithType(fieldType CustomFieldType) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.Type = fieldType
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithRequirement(requirement FieldRequirement) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.Requirement = requirement.Normalized()
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithOptions(options []string) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.Options = options
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithLookupCollection(collection string) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.LookupCollection = collection
		return nil
	})
	return b
}

func (b *customFieldBuilder) Build() (CustomField, error) {
	result := CustomField{
		Type:        CustomFieldText,
		Requirement: FieldOptional,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return CustomField{}, err
		}
	}

	if result.Key == "" {
		return CustomField{}, fmt.Errorf("custom field label %q produces an empty key", result.Label)
	}

	return result, nil
}

// EANAutofill governs which fields are skipped when a unit form is
// pre-populated from a base product found by EAN.
type EANAutofill struct {
	Enabled       bool     `json:"enabled"`
	ExcludeFields []string `json:"exclude_fields,omitempty"`
}

// Excludes reports whether the given field key is excluded. Entries are
// stored verbatim, so both the bare key and its specs-prefixed path match.
func (a EANAutofill) Excludes(key string) bool {
	return slices.Contains(a.ExcludeFields, key) ||
		slices.Contains(a.ExcludeFields, "specs."+key)
}

// CategoryConfig is the per-category field governance model. Every
// well-known field carries a tri-state requirement; custom fields extend the
// set with their own descriptors.
type CategoryConfig struct {
	IMEI1         FieldRequirement `json:"imei1"`
	IMEI2         FieldRequirement `json:"imei2"`
	SerialNumber  FieldRequirement `json:"serial_number"`
	BatteryHealth FieldRequirement `json:"battery_health"`
	RAM           FieldRequirement `json:"ram"`
	Storage       FieldRequirement `json:"storage"`
	Color         FieldRequirement `json:"color"`
	Version       FieldRequirement `json:"version"`

	CustomFields []CustomField `json:"custom_fields,omitempty"`
	EANAutofill  EANAutofill   `json:"ean_autofill,omitempty"`

	AutoNameEnabled  bool   `json:"auto_name_enabled"`
	AutoNameTemplate string `json:"auto_name_template,omitempty"`
	// Deprecated fallback kept for configs authored before templates existed.
	AutoNameFields    []string `json:"auto_name_fields,omitempty"`
	AutoNameSeparator string   `json:"auto_name_separator,omitempty"`
}

// Normalize returns a copy with every absent or unknown requirement replaced
// by the explicit optional default.
func (c CategoryConfig) Normalize() CategoryConfig {
	c.IMEI1 = c.IMEI1.Normalized()
	c.IMEI2 = c.IMEI2.Normalized()
	c.SerialNumber = c.SerialNumber.Normalized()
	c.BatteryHealth = c.BatteryHealth.Normalized()
	c.RAM = c.RAM.Normalized()
	c.Storage = c.Storage.Normalized()
	c.Color = c.Color.Normalized()
	c.Version = c.Version.Normalized()

	customFields := make([]CustomField, len(c.CustomFields))
	for i, field := range c.CustomFields {
		field.Requirement = field.Requirement.Normalized()
		if field.Type == "" {
			field.Type = CustomFieldText
		}
		customFields[i] = field
	}
	c.CustomFields = customFields

	return c
}

// Requirement resolves the governance value for a well-known field name or a
// custom field key. Unknown fields are reported as off so they are never
// checked.
func (c CategoryConfig) Requirement(field string) FieldRequirement {
	switch field {
	case FieldIMEI1:
		return c.IMEI1.Normalized()
	case FieldIMEI2:
		return c.IMEI2.Normalized()
	case FieldSerialNumber:
		return c.SerialNumber.Normalized()
	case FieldBatteryHealth:
		return c.BatteryHealth.Normalized()
	case FieldRAM:
		return c.RAM.Normalized()
	case FieldStorage:
		return c.Storage.Normalized()
	case FieldColor:
		return c.Color.Normalized()
	case FieldVersion:
		return c.Version.Normalized()
	}

	if field, ok := c.CustomFieldByKey(field); ok {
		return field.Requirement.Normalized()
	}

	return FieldOff
}

func (c CategoryConfig) CustomFieldByKey(key string) (CustomField, bool) {
	for _, field := range c.CustomFields {
		if field.Key == key {
			return field, true
		}
	}
	return CustomField{}, false
}

// EnsureCustomField appends the field unless one with the same key already
// exists, in which case the existing descriptor is reused.
func (c *CategoryConfig) EnsureCustomField(field CustomField) (CustomField, bool) {
	if existing, ok := c.CustomFieldByKey(field.Key); ok {
		return existing, false
	}
	c.CustomFields = append(c.CustomFields, field)
	return field, true
}

// Validate checks the structural invariants: custom field keys unique within
// the category, and every autofill exclude entry drawn from the union of
// well-known names and custom field keys.
func (c CategoryConfig) Validate() error {
	seen := make(map[string]bool, len(c.CustomFields))
	for _, field := range c.CustomFields {
		if field.Key == "" {
			return fmt.Errorf("custom field %q has an empty key", field.Label)
		}
		if seen[field.Key] {
			return fmt.Errorf("duplicated custom field key: %s", field.Key)
		}
		seen[field.Key] = true
	}

	for _, entry := range c.EANAutofill.ExcludeFields {
		key := strings.TrimPrefix(entry, "specs.")
		if slices.Contains(WellKnownFields, key) || seen[key] {
			continue
		}
		return fmt.Errorf("unknown autofill exclude field: %s", entry)
	}

	return nil
}
