package keysort

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSortSpec indicates a malformed group configuration.
	ErrInvalidSortSpec = errors.New("invalid sort spec")

	// ErrNotMapping indicates an argument that must be a mapping was not.
	ErrNotMapping = errors.New("value is not a mapping")
)

// SortSpecError describes a SortSpec that failed validation.
type SortSpecError struct {
	Group string
	Index int
	Name  string
}

func (e *SortSpecError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("keysort: group %q key #%d: keys must have a non-empty name (got %q)", e.Group, e.Index, e.Name)
	}
	return fmt.Sprintf("keysort: key #%d: keys must have a non-empty name (got %q)", e.Index, e.Name)
}

func (e *SortSpecError) Unwrap() error { return ErrInvalidSortSpec }
