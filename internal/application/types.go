package application

import (
	"fmt"

	"memo/internal/domain"
)

// Re-export domain types for use by adapters
type (
	Note   = domain.Note
	NoteID = domain.ID
	Filter = domain.Filter
	Counts = domain.Counts
)

const (
	FilterActive   = domain.FilterActive
	FilterArchived = domain.FilterArchived
	FilterRemoved  = domain.FilterRemoved
)

// ParseFilter converts a filter name into a Filter, returning a
// ValidationError for anything outside the enumeration.
func ParseFilter(name string) (Filter, error) {
	f, ok := domain.ParseFilter(name)
	if !ok {
		return f, &ValidationError{
			Field:   "filter",
			Message: fmt.Sprintf("expected active, archived or removed, got: %q", name),
			Err:     ErrInvalidFilter,
		}
	}
	return f, nil
}
