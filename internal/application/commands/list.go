package commands

import (
	"context"
	"fmt"
	"strings"

	"memo/internal/application"
	"memo/internal/domain"
	"memo/internal/ports"
)

// ListNotesResult contains the notes selected by a filter
type ListNotesResult struct {
	Filter domain.Filter
	Notes  []domain.Note
}

// ListNotesCommand lists the notes visible under a filter. An empty
// FilterName uses the store's current filter.
type ListNotesCommand struct {
	store      ports.NoteStore
	FilterName string
}

// NewListNotesCommand creates a command listing the current view
func NewListNotesCommand(store ports.NoteStore) *ListNotesCommand {
	return &ListNotesCommand{store: store}
}

// NewListNotesInCommand creates a command listing an explicit filter
// without changing the store's filter
func NewListNotesInCommand(store ports.NoteStore, filterName string) *ListNotesCommand {
	return &ListNotesCommand{store: store, FilterName: filterName}
}

// Execute runs the list command
func (c *ListNotesCommand) Execute(ctx context.Context) (*ListNotesResult, error) {
	if c.FilterName == "" {
		return &ListNotesResult{
			Filter: c.store.Filter(),
			Notes:  c.store.VisibleNotes(),
		}, nil
	}

	filter, err := application.ParseFilter(c.FilterName)
	if err != nil {
		return nil, err
	}

	return &ListNotesResult{
		Filter: filter,
		Notes:  c.store.NotesIn(filter),
	}, nil
}

// Format renders the listing as one "@pos  id  text" line per note
func (r *ListNotesResult) Format() string {
	if len(r.Notes) == 0 {
		return fmt.Sprintf("No %s notes.", r.Filter)
	}

	var sb strings.Builder
	for i, n := range r.Notes {
		fmt.Fprintf(&sb, "@%d  %s  %s", i+1, n.ID, n.Text)
		if n.Archived && r.Filter == domain.FilterRemoved {
			sb.WriteString("  (archived)")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
