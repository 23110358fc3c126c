package commands

import (
	"context"
	"fmt"

	"memo/internal/application"
	"memo/internal/domain"
	"memo/internal/ports"
)

// RemoveNoteResult contains the result of moving a note to or from the trash
type RemoveNoteResult struct {
	ID      domain.ID
	Removed bool
	Applied bool
	Message string
}

// RemoveNoteCommand sets or clears the removed flag of a note. Removed
// notes stay restorable until they are purged.
type RemoveNoteCommand struct {
	store   ports.NoteStore
	Ref     string
	Removed bool
}

// NewRemoveNoteCommand creates a command that moves a note to the trash
func NewRemoveNoteCommand(store ports.NoteStore, ref string) *RemoveNoteCommand {
	return &RemoveNoteCommand{store: store, Ref: ref, Removed: true}
}

// NewRestoreNoteCommand creates a command that takes a note out of the trash
func NewRestoreNoteCommand(store ports.NoteStore, ref string) *RemoveNoteCommand {
	return &RemoveNoteCommand{store: store, Ref: ref, Removed: false}
}

// Validate checks if the note reference is present
func (c *RemoveNoteCommand) Validate() error {
	return application.ValidateRequired("noteRef", c.Ref)
}

// Execute runs the remove command
func (c *RemoveNoteCommand) Execute(ctx context.Context) (*RemoveNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, err := application.ResolveRef(c.store, c.Ref)
	if err != nil {
		return nil, err
	}

	result := &RemoveNoteResult{ID: id, Removed: c.Removed}
	if !c.store.SetRemoved(id, c.Removed) {
		result.Message = notFoundMessage(c.Ref)
		return result, nil
	}

	result.Applied = true
	if c.Removed {
		result.Message = fmt.Sprintf("Removed note %s", id)
	} else {
		result.Message = fmt.Sprintf("Restored note %s", id)
	}
	return result, nil
}
