package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/adapters/editor"
	"memo/internal/adapters/tui/views"
	"memo/internal/application/commands"
	"memo/internal/domain"
	"memo/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewForm
	ViewPurge
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store  ports.NoteStore
	editor ports.Editor

	state ViewState
	list  *views.ListModel
	form  *views.NoteFormModel
	purge *views.PurgeModel
	help  *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over a session store. A nil
// clipboard or editor disables copying or external editing.
func NewApp(store ports.NoteStore, clipboard ports.Clipboard, ed ports.Editor) *App {
	return &App{
		store:  store,
		editor: ed,
		state:  ViewList,
		list:  views.NewListModel(store, clipboard),
		form:  views.NewNoteFormModel(store),
		purge: views.NewPurgeModel(store),
		help:  views.NewHelpModel(),
	}
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.purge.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.SetNote(msg.Note)
		return a, a.form.Init()

	case views.SwitchToPurgeMsg:
		a.state = ViewPurge
		a.purge.SetCount(msg.Count)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListMsg:
		a.showList()
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Note)

	case editorFinishedMsg:
		return a, a.finishEditing(msg)

	// Operation results
	case views.DoneMsg:
		if a.state == ViewForm {
			a.form.Reset()
		}
		a.showList()
		a.list.SetMessage(msg.Message, false)
		return a, nil

	case views.ErrMsg:
		if a.state == ViewForm {
			a.form.SetMessage(msg.Err.Error(), true)
			return a, nil
		}
		a.showList()
		a.list.SetMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewPurge:
		_, cmd = a.purge.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	id   domain.ID
	path string
	err  error
}

func (a *App) openEditor(note domain.Note) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return views.ErrMsg{Err: fmt.Errorf("no external editor configured")}
		}
	}

	path, err := editor.WriteDraft(note.Text)
	if err != nil {
		return func() tea.Msg { return views.ErrMsg{Err: err} }
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{id: note.ID, path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{id: note.ID, path: path, err: err}
	})
}

// finishEditing stores the edited draft. A failed editor run leaves the
// note unchanged.
func (a *App) finishEditing(msg editorFinishedMsg) tea.Cmd {
	text, readErr := editor.ReadDraft(msg.path)
	return func() tea.Msg {
		if msg.err != nil {
			return views.ErrMsg{Err: fmt.Errorf("editor: %w", msg.err)}
		}
		if readErr != nil {
			return views.ErrMsg{Err: readErr}
		}

		result, err := commands.NewEditNoteCommand(a.store, msg.id.String(), text).Execute(context.Background())
		if err != nil {
			return views.ErrMsg{Err: err}
		}
		return views.DoneMsg{Message: result.Message}
	}
}

func (a *App) showList() {
	a.state = ViewList
	a.list.Refresh()
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewPurge:
		return a.purge.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.list.View()
	}
}
