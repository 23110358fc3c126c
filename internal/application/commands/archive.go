package commands

import (
	"context"
	"fmt"

	"memo/internal/application"
	"memo/internal/domain"
	"memo/internal/ports"
)

// ArchiveNoteResult contains the result of archiving or unarchiving a note
type ArchiveNoteResult struct {
	ID       domain.ID
	Archived bool
	Applied  bool
	Message  string
}

// ArchiveNoteCommand sets or clears the archived flag of a note
type ArchiveNoteCommand struct {
	store    ports.NoteStore
	Ref      string
	Archived bool
}

// NewArchiveNoteCommand creates a command that archives a note
func NewArchiveNoteCommand(store ports.NoteStore, ref string) *ArchiveNoteCommand {
	return &ArchiveNoteCommand{store: store, Ref: ref, Archived: true}
}

// NewUnarchiveNoteCommand creates a command that unarchives a note
func NewUnarchiveNoteCommand(store ports.NoteStore, ref string) *ArchiveNoteCommand {
	return &ArchiveNoteCommand{store: store, Ref: ref, Archived: false}
}

// Validate checks if the note reference is present
func (c *ArchiveNoteCommand) Validate() error {
	return application.ValidateRequired("noteRef", c.Ref)
}

// Execute runs the archive command
func (c *ArchiveNoteCommand) Execute(ctx context.Context) (*ArchiveNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, err := application.ResolveRef(c.store, c.Ref)
	if err != nil {
		return nil, err
	}

	result := &ArchiveNoteResult{ID: id, Archived: c.Archived}
	if !c.store.SetArchived(id, c.Archived) {
		result.Message = notFoundMessage(c.Ref)
		return result, nil
	}

	result.Applied = true
	if c.Archived {
		result.Message = fmt.Sprintf("Archived note %s", id)
	} else {
		result.Message = fmt.Sprintf("Unarchived note %s", id)
	}
	return result, nil
}
