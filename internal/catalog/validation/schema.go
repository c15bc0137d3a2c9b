// Package validation compiles a category's governance config into a
// validator for unit records. Compilation is pure: the same config and
// context always produce the same schema.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"catalog-server/internal/catalog/domain"
)

// Context carries the runtime facts that influence compilation. Battery
// health is only enforceable on used units, whatever the config says.
type Context struct {
	Condition domain.Condition
}

// Record is the flat field map extracted from a unit.
type Record map[string]string

// Result collects per-field violations. An empty result means the record
// satisfies the schema.
type Result struct {
	Errors map[string][]string
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) add(field, message string) {
	if r.Errors == nil {
		r.Errors = make(map[string][]string)
	}
	r.Errors[field] = append(r.Errors[field], message)
}

// checkFunc validates a present, non-empty value.
type checkFunc func(value string) error

type rule struct {
	field       string
	requirement domain.FieldRequirement
	check       checkFunc
}

// Schema is a compiled set of field rules.
type Schema struct {
	rules []rule
}

// Compile resolves the effective requirement of every governed field for the
// given context and pairs it with the field's intrinsic format check.
func Compile(cfg domain.CategoryConfig, ctx Context) Schema {
	cfg = cfg.Normalize()

	schema := Schema{}
	schema.addRule(domain.FieldIMEI1, cfg.IMEI1, exactDigits(15, "must be 15 digits"))
	schema.addRule(domain.FieldIMEI2, cfg.IMEI2, exactDigits(15, "must be 15 digits"))
	schema.addRule(domain.FieldSerialNumber, cfg.SerialNumber, serialCheck(cfg.SerialNumber))
	schema.addRule(domain.FieldBatteryHealth, batteryRequirement(cfg.BatteryHealth, ctx.Condition), checkBatteryHealth)
	schema.addRule(domain.FieldRAM, cfg.RAM, nil)
	schema.addRule(domain.FieldStorage, cfg.Storage, nil)
	schema.addRule(domain.FieldColor, cfg.Color, nil)
	schema.addRule(domain.FieldVersion, cfg.Version, nil)

	for _, field := range cfg.CustomFields {
		schema.addRule(field.Key, field.Requirement, customFieldCheck(field))
	}

	return schema
}

func (s *Schema) addRule(field string, requirement domain.FieldRequirement, check checkFunc) {
	s.rules = append(s.rules, rule{field: field, requirement: requirement, check: check})
}

// Validate applies every rule to the record. Fields governed as off are
// never checked; optional fields are checked only when a value is present.
func (s Schema) Validate(record Record) Result {
	var result Result

	for _, rule := range s.rules {
		if rule.requirement.IsOff() {
			continue
		}

		value := strings.TrimSpace(record[rule.field])
		if value == "" {
			if rule.requirement.IsRequired() {
				result.add(rule.field, "is required")
			}
			continue
		}

		if rule.check != nil {
			if err := rule.check(value); err != nil {
				result.add(rule.field, err.Error())
			}
		}
	}

	return result
}

// batteryRequirement downgrades a required battery health to optional unless
// the unit is used. New and open-box units never demand it.
func batteryRequirement(configured domain.FieldRequirement, condition domain.Condition) domain.FieldRequirement {
	if configured.IsOff() {
		return domain.FieldOff
	}
	if configured.IsRequired() && condition == domain.ConditionUsed {
		return domain.FieldRequired
	}
	return domain.FieldOptional
}

func exactDigits(length int, message string) checkFunc {
	return func(value string) error {
		if len(value) != length || !allDigits(value) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// serialCheck enforces the minimum serial length only when the field is
// required; optional serials accept any present value.
func serialCheck(requirement domain.FieldRequirement) checkFunc {
	if !requirement.IsRequired() {
		return nil
	}
	return func(value string) error {
		if len(value) < 3 {
			return fmt.Errorf("must be at least 3 characters")
		}
		return nil
	}
}

func checkBatteryHealth(value string) error {
	health, err := strconv.Atoi(value)
	if err != nil || health < 0 || health > 100 {
		return fmt.Errorf("must be an integer between 0 and 100")
	}
	return nil
}

func customFieldCheck(field domain.CustomField) checkFunc {
	switch field.Type {
	case domain.CustomFieldNumber, domain.CustomFieldCurrency:
		return func(value string) error {
			normalized := strings.ReplaceAll(value, ",", ".")
			if _, err := strconv.ParseFloat(normalized, 64); err != nil {
				return fmt.Errorf("must be numeric")
			}
			return nil
		}
	case domain.CustomFieldCPF:
		return exactDigits(11, "must be 11 digits")
	case domain.CustomFieldCNPJ:
		return exactDigits(14, "must be 14 digits")
	default:
		return nil
	}
}

func allDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
