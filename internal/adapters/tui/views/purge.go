package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/adapters/tui/styles"
	"memo/internal/application/commands"
	"memo/internal/ports"
)

// ConfirmKeyMap defines key bindings for y/n confirmations
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// PurgeModel asks for confirmation before emptying the trash
type PurgeModel struct {
	ViewState
	store ports.NoteStore
	count int
}

// NewPurgeModel creates a new purge view model
func NewPurgeModel(store ports.NoteStore) *PurgeModel {
	return &PurgeModel{store: store}
}

// SetCount sets how many notes the confirmation mentions
func (m *PurgeModel) SetCount(count int) {
	m.count = count
}

// Init initializes the purge view
func (m *PurgeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the purge view
func (m *PurgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ConfirmKeys.Cancel):
			return m, func() tea.Msg { return SwitchToListMsg{} }
		case key.Matches(msg, ConfirmKeys.Confirm):
			return m, m.doPurge
		}
	}

	return m, nil
}

func (m *PurgeModel) doPurge() tea.Msg {
	result, err := commands.NewPurgeRemovedCommand(m.store).Execute(context.Background())
	if err != nil {
		return ErrMsg{Err: err}
	}
	return DoneMsg{Message: result.Message}
}

// View renders the purge confirmation view
func (m *PurgeModel) View() string {
	noun := "notes"
	if m.count == 1 {
		noun = "note"
	}

	return NewViewBuilder().
		Title("Empty Trash").
		Line(styles.ErrorMsg.Render("This action cannot be undone!")).
		BlankLine().
		Line(styles.InputLabel.Render(fmt.Sprintf("Permanently delete %d removed %s.", m.count, noun))).
		BlankLine().
		Line(renderConfirmPrompt("Are you sure?")).
		String()
}

func renderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
