package commands

import (
	"context"
	"fmt"

	"memo/internal/application"
	"memo/internal/domain"
	"memo/internal/ports"
)

// EditNoteResult contains the result of editing a note
type EditNoteResult struct {
	ID      domain.ID
	Applied bool
	Message string
}

// EditNoteCommand replaces the text of an existing note
type EditNoteCommand struct {
	store ports.NoteStore
	Ref   string
	Text  string
}

// NewEditNoteCommand creates a new EditNoteCommand
func NewEditNoteCommand(store ports.NoteStore, ref, text string) *EditNoteCommand {
	return &EditNoteCommand{
		store: store,
		Ref:   ref,
		Text:  text,
	}
}

// Validate checks the note reference. The text is deliberately not
// validated: edits may clear a note.
func (c *EditNoteCommand) Validate() error {
	return application.ValidateRequired("noteRef", c.Ref)
}

// Execute runs the edit command
func (c *EditNoteCommand) Execute(ctx context.Context) (*EditNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, err := application.ResolveRef(c.store, c.Ref)
	if err != nil {
		return nil, err
	}

	if !c.store.SetText(id, c.Text) {
		return &EditNoteResult{ID: id, Message: notFoundMessage(c.Ref)}, nil
	}

	return &EditNoteResult{
		ID:      id,
		Applied: true,
		Message: fmt.Sprintf("Edited note %s", id),
	}, nil
}

// notFoundMessage describes a reference that matched no note
func notFoundMessage(ref string) string {
	return fmt.Sprintf("No note matches %s", ref)
}
