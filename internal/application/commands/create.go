package commands

import (
	"context"
	"fmt"

	"memo/internal/domain"
	"memo/internal/ports"
)

// CreateNoteResult contains the result of creating a note
type CreateNoteResult struct {
	Note    domain.Note
	Applied bool
	Message string
}

// CreateNoteCommand adds a new note to the front of the list
type CreateNoteCommand struct {
	store ports.NoteStore
	Text  string
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(store ports.NoteStore, text string) *CreateNoteCommand {
	return &CreateNoteCommand{
		store: store,
		Text:  text,
	}
}

// Execute runs the create command. Empty text is not an error: the note
// is simply not created and the result says so.
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	note, ok := c.store.Create(c.Text)
	if !ok {
		return &CreateNoteResult{
			Applied: false,
			Message: "Ignored empty note",
		}, nil
	}

	return &CreateNoteResult{
		Note:    note,
		Applied: true,
		Message: fmt.Sprintf("Created note %s: %s", note.ID, note.Text),
	}, nil
}
