package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON stores a free-form object column.
type JSON map[string]interface{}

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	bytes, ok := normalizeJSONBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// StringArray stores a string list column (images etc).
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := normalizeJSONBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// UintArray stores an id list column (carousel product picks).
type UintArray []uint

// Value implements driver.Valuer.
func (a UintArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *UintArray) Scan(value interface{}) error {
	if value == nil {
		*a = UintArray{}
		return nil
	}
	bytes, ok := normalizeJSONBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Spec is one product specification row.
type Spec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SpecList stores the product spec sheet as a JSON column.
type SpecList []Spec

// Value implements driver.Valuer.
func (s SpecList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *SpecList) Scan(value interface{}) error {
	if value == nil {
		*s = SpecList{}
		return nil
	}
	bytes, ok := normalizeJSONBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// BoolMap stores per-key boolean flags. A nil map round-trips as NULL,
// which display override resolution relies on to tell "no overrides"
// apart from an empty override set.
type BoolMap map[string]bool

// Value implements driver.Valuer.
func (b BoolMap) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner.
func (b *BoolMap) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}
	bytes, ok := normalizeJSONBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, b)
}

func normalizeJSONBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
