package commands

import (
	"context"
	"fmt"

	"memo/internal/ports"
)

// PurgeRemovedResult contains the result of purging the trash
type PurgeRemovedResult struct {
	Purged  int
	Message string
}

// PurgeRemovedCommand permanently deletes every removed note
type PurgeRemovedCommand struct {
	store ports.NoteStore
}

// NewPurgeRemovedCommand creates a new PurgeRemovedCommand
func NewPurgeRemovedCommand(store ports.NoteStore) *PurgeRemovedCommand {
	return &PurgeRemovedCommand{store: store}
}

// Execute runs the purge command
func (c *PurgeRemovedCommand) Execute(ctx context.Context) (*PurgeRemovedResult, error) {
	purged := c.store.PurgeRemoved()

	result := &PurgeRemovedResult{Purged: purged}
	switch purged {
	case 0:
		result.Message = "No removed notes to purge"
	case 1:
		result.Message = "Purged 1 removed note"
	default:
		result.Message = fmt.Sprintf("Purged %d removed notes", purged)
	}
	return result, nil
}
