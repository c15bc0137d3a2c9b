package domain

// AutofillFromProduct produces the field values pre-filled into a unit form
// from a base product previously matched by EAN. Spec entries excluded by the
// autofill config are skipped; empty values are never filled.
func AutofillFromProduct(cfg CategoryConfig, product Product) map[string]string {
	if !cfg.EANAutofill.Enabled {
		return map[string]string{}
	}

	fields := make(map[string]string, len(product.Specs))
	for key, value := range product.Specs {
		if value == "" {
			continue
		}
		if cfg.EANAutofill.Excludes(key) {
			continue
		}
		fields[key] = value
	}

	return fields
}
