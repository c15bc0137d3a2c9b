package usecases

import (
	"catalog-server/internal/intake/domain"
)

const (
	eanLengthErrMessage     = "EAN must be 13 digits"
	imei1LengthErrMessage   = "imei1 must be 15 digits"
	imei2LengthErrMessage   = "imei2 must be 15 digits"
	serialMissingErrMessage = "serial number is required"

	duplicateSerialWarnMessage = "duplicate serial number in this import"
	duplicateIMEIWarnMessage   = "duplicate imei1 in this import"
)

// ValidateRows runs the structural checks on every row independently, then
// flags duplicates against earlier rows only. The first occurrence of a value
// never carries the warning; later repeats do.
func ValidateRows(rows []domain.BulkRow) []domain.RowValidation {
	validations := make([]domain.RowValidation, len(rows))
	for i, row := range rows {
		validations[i] = domain.RowValidation{
			Row:      row.Index,
			Errors:   rowErrors(row),
			Warnings: duplicateWarnings(row, rows[:i]),
		}
	}
	return validations
}

// rowErrors collects every structural violation without short-circuiting.
func rowErrors(row domain.BulkRow) []string {
	var errs []string

	if len(row.EAN()) != 13 {
		errs = append(errs, eanLengthErrMessage)
	}
	if imei := row.IMEI1(); imei != "" && len(imei) != 15 {
		errs = append(errs, imei1LengthErrMessage)
	}
	if imei := row.IMEI2(); imei != "" && len(imei) != 15 {
		errs = append(errs, imei2LengthErrMessage)
	}
	if row.SerialNumber() == "" {
		errs = append(errs, serialMissingErrMessage)
	}

	return errs
}

// duplicateWarnings scans the rows preceding this one for an equal serial or
// first identifier. One warning per kind at most.
func duplicateWarnings(row domain.BulkRow, earlier []domain.BulkRow) []string {
	var warnings []string

	if serial := row.SerialNumber(); serial != "" {
		for _, other := range earlier {
			if other.SerialNumber() == serial {
				warnings = append(warnings, duplicateSerialWarnMessage)
				break
			}
		}
	}

	if imei := row.IMEI1(); imei != "" {
		for _, other := range earlier {
			if other.IMEI1() == imei {
				warnings = append(warnings, duplicateIMEIWarnMessage)
				break
			}
		}
	}

	return warnings
}
