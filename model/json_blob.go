package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONBlob stores semi-free-form nested data (loops, chords) as an opaque
// JSON document. The structure isn't modeled relationally, the database
// only ever sees the raw text.

type JSONBlob json.RawMessage

// Value implements the driver.Valuer interface.
func (b JSONBlob) Value() (driver.Value, error) {
	if len(b) == 0 {
		return nil, nil
	}

	if !json.Valid(b) {
		return nil, fmt.Errorf("invalid json document, %s", string(b))
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (b *JSONBlob) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}

	switch v := value.(type) {
	case string:
		*b = JSONBlob(v)
	case []byte:
		*b = JSONBlob(append([]byte(nil), v...))
	default:
		return fmt.Errorf("failed to scan JSONBlob, %v", value)
	}

	return nil
}

func (b JSONBlob) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}

	return b, nil
}

func (b *JSONBlob) UnmarshalJSON(data []byte) error {
	if b == nil {
		return fmt.Errorf("can't unmarshal into a nil JSONBlob")
	}

	*b = JSONBlob(append([]byte(nil), data...))
	return nil
}
