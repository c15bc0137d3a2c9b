package usecases

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"catalog-server/internal/intake/domain"
)

var ErrEmptyInput = errors.New("bulk input has no header row")

// ParseRows reads CSV input into bulk rows. Headers are lowercased and
// trimmed; unrecognized columns are kept verbatim as pass-through fields.
// Data row indexes are 1-based.
func ParseRows(input io.Reader) ([]domain.BulkRow, error) {
	reader := csv.NewReader(input)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var rows []domain.BulkRow
	for index := 1; ; index++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", index, err)
		}

		values := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(record) {
				values[column] = strings.TrimSpace(record[i])
			}
		}

		rows = append(rows, domain.BulkRow{Index: index, Values: values})
	}

	return rows, nil
}
