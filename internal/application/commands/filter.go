package commands

import (
	"context"
	"fmt"

	"memo/internal/application"
	"memo/internal/domain"
	"memo/internal/ports"
)

// SetFilterResult contains the result of switching the active filter
type SetFilterResult struct {
	Filter  domain.Filter
	Visible int
	Message string
}

// SetFilterCommand switches the view to a different lifecycle state
type SetFilterCommand struct {
	store ports.NoteStore
	Name  string
}

// NewSetFilterCommand creates a new SetFilterCommand from a filter name
func NewSetFilterCommand(store ports.NoteStore, name string) *SetFilterCommand {
	return &SetFilterCommand{store: store, Name: name}
}

// Validate checks that the name is a known filter
func (c *SetFilterCommand) Validate() error {
	_, err := application.ParseFilter(c.Name)
	return err
}

// Execute runs the filter command
func (c *SetFilterCommand) Execute(ctx context.Context) (*SetFilterResult, error) {
	filter, err := application.ParseFilter(c.Name)
	if err != nil {
		return nil, err
	}

	c.store.SetFilter(filter)
	visible := len(c.store.VisibleNotes())

	return &SetFilterResult{
		Filter:  filter,
		Visible: visible,
		Message: fmt.Sprintf("Showing %s notes (%d)", filter, visible),
	}, nil
}
