package domain

import (
	"strconv"
	"strings"
)

// ID identifies a note for its entire lifetime
type ID int64

// String returns the decimal form of the ID
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Note is a single user-authored text item with lifecycle flags
type Note struct {
	ID       ID
	Text     string
	Archived bool
	Removed  bool
}

// State returns the filter bucket the note is displayed under.
// Removed takes priority over Archived.
func (n Note) State() Filter {
	switch {
	case n.Removed:
		return FilterRemoved
	case n.Archived:
		return FilterArchived
	default:
		return FilterActive
	}
}

// Filter selects which notes are visible
type Filter int

const (
	FilterActive Filter = iota
	FilterArchived
	FilterRemoved
)

// Filters lists every filter in display order
var Filters = []Filter{FilterActive, FilterArchived, FilterRemoved}

// String returns a human-readable name for the filter
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterArchived:
		return "archived"
	case FilterRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Matches reports whether a note belongs to the filter's view
func (f Filter) Matches(n Note) bool {
	switch f {
	case FilterActive:
		return !n.Archived && !n.Removed
	case FilterArchived:
		return n.Archived && !n.Removed
	case FilterRemoved:
		return n.Removed
	default:
		return false
	}
}

// Next returns the filter after f, wrapping around
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// Prev returns the filter before f, wrapping around
func (f Filter) Prev() Filter {
	return Filters[(int(f)+len(Filters)-1)%len(Filters)]
}

// ParseFilter converts a filter name to a Filter (case-insensitive)
func ParseFilter(s string) (Filter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return FilterActive, true
	case "archived":
		return FilterArchived, true
	case "removed", "trash":
		return FilterRemoved, true
	default:
		return FilterActive, false
	}
}

// Field is a mutable attribute of a note
type Field int

const (
	FieldText Field = iota
	FieldArchived
	FieldRemoved
)

// String returns a human-readable name for the field
func (f Field) String() string {
	switch f {
	case FieldText:
		return "text"
	case FieldArchived:
		return "archived"
	case FieldRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Update is a tagged single-field update. Text is used for FieldText,
// Flag for the boolean fields.
type Update struct {
	Field Field
	Text  string
	Flag  bool
}

// SetTextTo returns an update replacing the note text
func SetTextTo(text string) Update {
	return Update{Field: FieldText, Text: text}
}

// SetArchivedTo returns an update setting the archived flag
func SetArchivedTo(archived bool) Update {
	return Update{Field: FieldArchived, Flag: archived}
}

// SetRemovedTo returns an update setting the removed flag
func SetRemovedTo(removed bool) Update {
	return Update{Field: FieldRemoved, Flag: removed}
}

// apply returns a copy of n with the update applied
func (u Update) apply(n Note) (Note, bool) {
	switch u.Field {
	case FieldText:
		n.Text = u.Text
	case FieldArchived:
		n.Archived = u.Flag
	case FieldRemoved:
		n.Removed = u.Flag
	default:
		return n, false
	}
	return n, true
}

// Counts holds the number of notes in each filter bucket
type Counts struct {
	Active   int
	Archived int
	Removed  int
}

// Of returns the count for a single filter
func (c Counts) Of(f Filter) int {
	switch f {
	case FilterActive:
		return c.Active
	case FilterArchived:
		return c.Archived
	case FilterRemoved:
		return c.Removed
	default:
		return 0
	}
}

// Total returns the number of notes across all buckets
func (c Counts) Total() int {
	return c.Active + c.Archived + c.Removed
}
