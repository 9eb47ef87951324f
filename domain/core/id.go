package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// TableHandle identifies a stored processing context so a later call can
// request the statistics portion without re-parsing the input.
type TableHandle ID

// NewTableHandle creates a new opaque table handle
func NewTableHandle() TableHandle {
	return TableHandle(NewID())
}

// String returns the string representation
func (h TableHandle) String() string { return ID(h).String() }

// IsEmpty checks if the handle is empty
func (h TableHandle) IsEmpty() bool { return h == "" }

// ParseTableHandle parses a string into a TableHandle
func ParseTableHandle(s string) (TableHandle, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("table handle cannot be empty")
	}
	return TableHandle(s), nil
}
