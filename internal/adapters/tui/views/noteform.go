package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/adapters/tui/styles"
	"memo/internal/application/commands"
	"memo/internal/domain"
	"memo/internal/ports"
)

// NoteFormKeyMap defines key bindings for the note form
type NoteFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var NoteFormKeys = NoteFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// NoteFormModel is the model for writing a new note or editing an
// existing one
type NoteFormModel struct {
	ViewState
	store   ports.NoteStore
	editing *domain.Note
	input   textinput.Model
}

// NewNoteFormModel creates a new note form
func NewNoteFormModel(store ports.NoteStore) *NoteFormModel {
	input := textinput.New()
	input.Placeholder = "What do you want to remember?"
	input.CharLimit = 500

	return &NoteFormModel{
		store: store,
		input: input,
	}
}

// SetNote prepares the form. A nil note starts a new one; otherwise the
// note's text is loaded for editing.
func (m *NoteFormModel) SetNote(note *domain.Note) {
	m.ClearMessage()
	m.editing = note
	if note != nil {
		m.input.SetValue(note.Text)
		m.input.CursorEnd()
	} else {
		m.input.SetValue("")
	}
	m.input.Focus()
}

// Editing reports whether the form edits an existing note
func (m *NoteFormModel) Editing() bool {
	return m.editing != nil
}

// Value returns the current input text
func (m *NoteFormModel) Value() string {
	return m.input.Value()
}

// Init initializes the form
func (m *NoteFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form
func (m *NoteFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case noteRejectedMsg:
		m.SetMessage("Write something first", true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, NoteFormKeys.Cancel):
			return m, func() tea.Msg { return SwitchToListMsg{} }

		case key.Matches(msg, NoteFormKeys.Submit):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *NoteFormModel) submit() tea.Cmd {
	text := m.input.Value()
	ctx := context.Background()

	if m.editing != nil {
		ref := m.editing.ID.String()
		return func() tea.Msg {
			result, err := commands.NewEditNoteCommand(m.store, ref, text).Execute(ctx)
			if err != nil {
				return ErrMsg{Err: err}
			}
			return DoneMsg{Message: result.Message}
		}
	}

	return func() tea.Msg {
		result, err := commands.NewCreateNoteCommand(m.store, text).Execute(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if !result.Applied {
			return noteRejectedMsg{}
		}
		return DoneMsg{Message: result.Message}
	}
}

// noteRejectedMsg keeps the form open when an empty note was submitted
type noteRejectedMsg struct{}

// Reset clears the input after a successful submit
func (m *NoteFormModel) Reset() {
	m.editing = nil
	m.input.SetValue("")
	m.input.Blur()
}

// View renders the form
func (m *NoteFormModel) View() string {
	title := "New Note"
	subtitle := "New notes go to the top of the active list."
	if m.editing != nil {
		title = "Edit Note"
		subtitle = "Editing note " + m.editing.ID.String()
	}

	return NewViewBuilder().
		Title(title).
		Subtitle(subtitle).
		Line(styles.InputLabel.Render("Text:")).
		Line(styles.InputFocused.Render(m.input.View())).
		Message(m.Message, m.MessageErr).
		Help(NoteFormKeys.Submit, NoteFormKeys.Cancel).
		String()
}
