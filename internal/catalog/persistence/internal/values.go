package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringMap stores a flat string map as a JSON text column.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*m = StringMap{}
		return nil
	default:
		return errors.New("invalid type for string map")
	}

	return json.Unmarshal(data, m)
}
