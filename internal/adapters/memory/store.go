package memory

import (
	"sync"

	"go.uber.org/zap"

	"memo/internal/domain"
	"memo/internal/ports"
)

// Store implements ports.NoteStore for a single process session. It
// serialises access to a domain.NoteStore so adapters that dispatch from
// several goroutines still observe every operation atomically, and logs
// each mutation.
type Store struct {
	mu     sync.Mutex
	notes  *domain.NoteStore
	logger *zap.Logger
}

// Ensure Store implements NoteStore
var _ ports.NoteStore = (*Store)(nil)

// NewStore creates an empty session store. A nil clock uses time.Now and
// a nil logger disables logging.
func NewStore(clock domain.Clock, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		notes:  domain.NewNoteStore(clock),
		logger: logger.Named("store"),
	}
}

// Create adds a note to the front of the list
func (s *Store) Create(text string) (domain.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes.Create(text)
	if !ok {
		s.logger.Debug("ignored empty note")
		return note, false
	}
	s.logger.Debug("created note", zap.Int64("id", int64(note.ID)), zap.Int("len", s.notes.Len()))
	return note, true
}

// SetText replaces a note's text
func (s *Store) SetText(id domain.ID, text string) bool {
	return s.apply(id, domain.SetTextTo(text))
}

// SetArchived sets a note's archived flag
func (s *Store) SetArchived(id domain.ID, archived bool) bool {
	return s.apply(id, domain.SetArchivedTo(archived))
}

// SetRemoved sets a note's removed flag
func (s *Store) SetRemoved(id domain.ID, removed bool) bool {
	return s.apply(id, domain.SetRemovedTo(removed))
}

func (s *Store) apply(id domain.ID, u domain.Update) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := s.notes.Apply(id, u)
	s.logger.Debug("updated note",
		zap.Int64("id", int64(id)),
		zap.Stringer("field", u.Field),
		zap.Bool("applied", applied),
	)
	return applied
}

// PurgeRemoved permanently drops every removed note
func (s *Store) PurgeRemoved() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := s.notes.PurgeRemoved()
	s.logger.Debug("purged removed notes", zap.Int("purged", purged), zap.Int("len", s.notes.Len()))
	return purged
}

// SetFilter switches the active filter
func (s *Store) SetFilter(filter domain.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes.SetFilter(filter)
	s.logger.Debug("set filter", zap.Stringer("filter", filter))
}

// Filter returns the active filter
func (s *Store) Filter() domain.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Filter()
}

// VisibleNotes returns the notes selected by the active filter
func (s *Store) VisibleNotes() []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.VisibleNotes()
}

// NotesIn returns the notes selected by filter
func (s *Store) NotesIn(filter domain.Filter) []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.NotesIn(filter)
}

// Get returns a note by id
func (s *Store) Get(id domain.ID) (domain.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Get(id)
}

// Counts returns the size of each filter bucket
func (s *Store) Counts() domain.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Counts()
}
