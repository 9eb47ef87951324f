package table

import "strings"

// Value is a single cell: the raw text as parsed plus an explicit missing
// marker. Missing is distinct from the empty string - a cell is missing when
// its raw text is empty or whitespace-only, or when it was synthesized while
// padding a ragged row.
type Value struct {
	Raw     string `json:"raw"`
	Missing bool   `json:"missing"`
}

// NewValue creates a value from raw cell text, marking whitespace-only cells missing
func NewValue(raw string) Value {
	if strings.TrimSpace(raw) == "" {
		return Value{Missing: true}
	}
	return Value{Raw: raw}
}

// MissingValue creates an explicit missing marker
func MissingValue() Value {
	return Value{Missing: true}
}

// Trimmed returns the cell text with surrounding whitespace removed.
// All parsing and comparison rules operate on the trimmed text.
func (v Value) Trimmed() string {
	return strings.TrimSpace(v.Raw)
}

// String returns a printable representation
func (v Value) String() string {
	if v.Missing {
		return "<missing>"
	}
	return v.Raw
}
