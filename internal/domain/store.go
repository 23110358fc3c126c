package domain

import (
	"slices"
	"strings"
	"time"
)

// Clock returns the current time. It is injectable so that id allocation
// can be tested deterministically.
type Clock func() time.Time

// NoteStore holds the ordered note sequence (newest first) and the active
// filter. All operations are total: unknown ids and empty creations are
// silent no-ops.
//
// Every mutation replaces the sequence with a new slice, so slices handed
// out by Notes, NotesIn and VisibleNotes are never modified afterwards.
//
// NoteStore is not safe for concurrent use.
type NoteStore struct {
	notes  []Note
	filter Filter
	lastID ID
	clock  Clock
}

// NewNoteStore creates an empty store with the Active filter
func NewNoteStore(clock Clock) *NoteStore {
	if clock == nil {
		clock = time.Now
	}
	return &NoteStore{clock: clock}
}

// nextID allocates a strictly increasing id from the clock (Unix millis)
func (s *NoteStore) nextID() ID {
	id := ID(s.clock().UnixMilli())
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Create prepends a new active note. Empty or whitespace-only text is
// ignored and reported with ok=false.
func (s *NoteStore) Create(text string) (note Note, ok bool) {
	if strings.TrimSpace(text) == "" {
		return Note{}, false
	}

	note = Note{ID: s.nextID(), Text: text}

	notes := make([]Note, 0, len(s.notes)+1)
	notes = append(notes, note)
	notes = append(notes, s.notes...)
	s.notes = notes

	return note, true
}

// Apply performs a single-field update on the note with the given id.
// It returns false without changing anything if the id is unknown or the
// field is not recognised.
func (s *NoteStore) Apply(id ID, u Update) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	updated, ok := u.apply(s.notes[i])
	if !ok {
		return false
	}

	notes := slices.Clone(s.notes)
	notes[i] = updated
	s.notes = notes
	return true
}

// SetText replaces the note text. Unlike Create it accepts any string.
func (s *NoteStore) SetText(id ID, text string) bool {
	return s.Apply(id, SetTextTo(text))
}

// SetArchived sets the archived flag, also while the note is removed
func (s *NoteStore) SetArchived(id ID, archived bool) bool {
	return s.Apply(id, SetArchivedTo(archived))
}

// SetRemoved sets the removed flag
func (s *NoteStore) SetRemoved(id ID, removed bool) bool {
	return s.Apply(id, SetRemovedTo(removed))
}

// PurgeRemoved permanently drops every removed note and returns how many
// were dropped. Survivors keep their order.
func (s *NoteStore) PurgeRemoved() int {
	kept := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if !n.Removed {
			kept = append(kept, n)
		}
	}

	purged := len(s.notes) - len(kept)
	if purged > 0 {
		s.notes = kept
	}
	return purged
}

// SetFilter sets the active filter
func (s *NoteStore) SetFilter(f Filter) {
	s.filter = f
}

// Filter returns the active filter
func (s *NoteStore) Filter() Filter {
	return s.filter
}

// VisibleNotes returns the notes selected by the active filter, derived
// from the current sequence on every call.
func (s *NoteStore) VisibleNotes() []Note {
	return s.NotesIn(s.filter)
}

// NotesIn returns the notes selected by f, in sequence order
func (s *NoteStore) NotesIn(f Filter) []Note {
	result := []Note{}
	for _, n := range s.notes {
		if f.Matches(n) {
			result = append(result, n)
		}
	}
	return result
}

// Notes returns the whole sequence, newest first
func (s *NoteStore) Notes() []Note {
	return slices.Clone(s.notes)
}

// Get returns the note with the given id
func (s *NoteStore) Get(id ID) (Note, bool) {
	i := s.index(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

// Len returns the number of notes in the sequence
func (s *NoteStore) Len() int {
	return len(s.notes)
}

// Counts returns the size of each filter bucket
func (s *NoteStore) Counts() Counts {
	var c Counts
	for _, n := range s.notes {
		switch n.State() {
		case FilterActive:
			c.Active++
		case FilterArchived:
			c.Archived++
		case FilterRemoved:
			c.Removed++
		}
	}
	return c
}

func (s *NoteStore) index(id ID) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}
