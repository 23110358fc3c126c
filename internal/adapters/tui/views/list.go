package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/application/commands"
	"memo/internal/domain"
	"memo/internal/ports"
)

// ListKeyMap defines key bindings for the list view
type ListKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Active     key.Binding
	Archived   key.Binding
	Removed    key.Binding
	New        key.Binding
	Edit       key.Binding
	External   key.Binding
	Archive    key.Binding
	Remove     key.Binding
	Purge      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextFilter: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab", "next view"),
	),
	PrevFilter: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Active: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "active"),
	),
	Archived: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "archived"),
	),
	Removed: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "trash"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	External: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit in $EDITOR"),
	),
	Archive: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "archive"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "trash"),
	),
	Purge: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "empty trash"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// listChrome is the number of lines used by everything but the note rows
const listChrome = 12

// ListModel is the model for the filtered note list
type ListModel struct {
	ViewState
	store     ports.NoteStore
	clipboard ports.Clipboard
	notes     []domain.Note
	counts    domain.Counts
	paginator *Paginator
}

// NewListModel creates a new list model
func NewListModel(store ports.NoteStore, clipboard ports.Clipboard) *ListModel {
	m := &ListModel{
		store:     store,
		clipboard: clipboard,
		paginator: NewPaginator(10),
	}
	m.Refresh()
	return m
}

// Init initializes the list
func (m *ListModel) Init() tea.Cmd {
	return nil
}

// Refresh re-derives the visible notes from the store
func (m *ListModel) Refresh() {
	m.notes = m.store.VisibleNotes()
	m.counts = m.store.Counts()
	m.paginator.SetTotal(len(m.notes))
}

// Notes returns the notes currently shown
func (m *ListModel) Notes() []domain.Note {
	return m.notes
}

// Update handles messages for the list
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, ListKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ListKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, ListKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, ListKeys.NextFilter):
			m.switchFilter(m.store.Filter().Next())
			return m, nil

		case key.Matches(msg, ListKeys.PrevFilter):
			m.switchFilter(m.store.Filter().Prev())
			return m, nil

		case key.Matches(msg, ListKeys.Active):
			m.switchFilter(domain.FilterActive)
			return m, nil

		case key.Matches(msg, ListKeys.Archived):
			m.switchFilter(domain.FilterArchived)
			return m, nil

		case key.Matches(msg, ListKeys.Removed):
			m.switchFilter(domain.FilterRemoved)
			return m, nil

		case key.Matches(msg, ListKeys.New):
			return m, func() tea.Msg { return SwitchToFormMsg{} }

		case key.Matches(msg, ListKeys.Edit):
			if note, ok := m.selectedNote(); ok {
				return m, func() tea.Msg { return SwitchToFormMsg{Note: &note} }
			}
			return m, nil

		case key.Matches(msg, ListKeys.External):
			if note, ok := m.selectedNote(); ok {
				return m, func() tea.Msg { return OpenEditorMsg{Note: note} }
			}
			return m, nil

		case key.Matches(msg, ListKeys.Archive):
			if note, ok := m.selectedNote(); ok {
				return m, m.toggleArchived(note)
			}
			return m, nil

		case key.Matches(msg, ListKeys.Remove):
			if note, ok := m.selectedNote(); ok {
				return m, m.toggleRemoved(note)
			}
			return m, nil

		case key.Matches(msg, ListKeys.Purge):
			if m.counts.Removed == 0 {
				m.SetMessage("Trash is empty", false)
				return m, nil
			}
			count := m.counts.Removed
			return m, func() tea.Msg { return SwitchToPurgeMsg{Count: count} }

		case key.Matches(msg, ListKeys.Copy):
			if note, ok := m.selectedNote(); ok {
				return m, m.copyNote(note)
			}
			return m, nil

		case key.Matches(msg, ListKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *ListModel) switchFilter(f domain.Filter) {
	m.store.SetFilter(f)
	m.paginator.Reset()
	m.Refresh()
}

func (m *ListModel) toggleArchived(note domain.Note) tea.Cmd {
	return func() tea.Msg {
		ref := note.ID.String()
		cmd := commands.NewArchiveNoteCommand(m.store, ref)
		if note.Archived {
			cmd = commands.NewUnarchiveNoteCommand(m.store, ref)
		}
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DoneMsg{Message: result.Message}
	}
}

func (m *ListModel) toggleRemoved(note domain.Note) tea.Cmd {
	return func() tea.Msg {
		ref := note.ID.String()
		cmd := commands.NewRemoveNoteCommand(m.store, ref)
		if note.Removed {
			cmd = commands.NewRestoreNoteCommand(m.store, ref)
		}
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return DoneMsg{Message: result.Message}
	}
}

func (m *ListModel) copyNote(note domain.Note) tea.Cmd {
	return func() tea.Msg {
		if m.clipboard == nil {
			return ErrMsg{Err: fmt.Errorf("clipboard unavailable")}
		}
		if err := m.clipboard.WriteAll(note.Text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return DoneMsg{Message: fmt.Sprintf("Copied note %s", note.ID)}
	}
}

func (m *ListModel) selectedNote() (domain.Note, bool) {
	cursor := m.paginator.Cursor()
	if cursor >= 0 && cursor < len(m.notes) {
		return m.notes[cursor], true
	}
	return domain.Note{}, false
}

// SetSize updates the view dimensions and the page size
func (m *ListModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(max(height-listChrome, 3))
}

// View renders the list
func (m *ListModel) View() string {
	v := NewViewBuilder().
		Title("Memo").
		Line(RenderTabs(m.store.Filter(), m.counts)).
		BlankLine()

	if len(m.notes) == 0 {
		v.Muted(EmptyViewText(m.store.Filter()))
	} else {
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(RenderNote(m.notes[i], i == m.paginator.Cursor(), m.Width))
		}
		if pages := m.paginator.TotalPages(); pages > 1 {
			v.Muted(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), pages))
		}
	}

	return v.Message(m.Message, m.MessageErr).
		Help(m.helpBindings()...).
		String()
}

func (m *ListModel) helpBindings() []key.Binding {
	bindings := []key.Binding{ListKeys.NextFilter, ListKeys.New}
	if len(m.notes) > 0 {
		bindings = append(bindings, ListKeys.Edit, ListKeys.Archive, ListKeys.Remove, ListKeys.Copy)
	}
	if m.store.Filter() == domain.FilterRemoved {
		bindings = append(bindings, ListKeys.Purge)
	}
	return append(bindings, ListKeys.Help, ListKeys.Quit)
}
