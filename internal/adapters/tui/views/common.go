package views

import "memo/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching

// SwitchToFormMsg opens the note form. A nil Note creates a new note.
type SwitchToFormMsg struct {
	Note *domain.Note
}

// SwitchToPurgeMsg opens the purge confirmation
type SwitchToPurgeMsg struct {
	Count int
}

// OpenEditorMsg asks the app to edit a note in the external editor
type OpenEditorMsg struct {
	Note domain.Note
}

type SwitchToHelpMsg struct{}

type SwitchToListMsg struct{}

// DoneMsg reports a finished operation and returns to the list
type DoneMsg struct {
	Message string
}

// ErrMsg reports a failed operation to the current view
type ErrMsg struct {
	Err error
}
