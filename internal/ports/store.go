package ports

import "memo/internal/domain"

// NoteStore defines the mutation and query interface presentation layers
// use to drive a note session. Unknown ids are silent no-ops: the bool
// results only report whether anything changed.
type NoteStore interface {
	// Mutations
	Create(text string) (domain.Note, bool)
	SetText(id domain.ID, text string) bool
	SetArchived(id domain.ID, archived bool) bool
	SetRemoved(id domain.ID, removed bool) bool
	PurgeRemoved() int
	SetFilter(filter domain.Filter)

	// Queries
	Filter() domain.Filter
	VisibleNotes() []domain.Note
	NotesIn(filter domain.Filter) []domain.Note
	Get(id domain.ID) (domain.Note, bool)
	Counts() domain.Counts
}

// Ensure the core store satisfies the port directly
var _ NoteStore = (*domain.NoteStore)(nil)
