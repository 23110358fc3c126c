package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/domain"
)

func newListStore(texts ...string) *domain.NoteStore {
	store := domain.NewNoteStore(func() time.Time { return time.UnixMilli(100) })
	for _, text := range texts {
		store.Create(text)
	}
	return store
}

func TestListModel_ViewShowsTabsAndNotes(t *testing.T) {
	store := newListStore("first", "second", "third")
	store.SetArchived(100, true)
	store.SetArchived(101, true)
	store.SetRemoved(101, true)

	m := NewListModel(store, nil)
	view := m.View()

	for _, want := range []string{"Active (1)", "Archived (1)", "Trash (1)", "third"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "first") || strings.Contains(view, "second") {
		t.Errorf("view shows notes outside the active filter:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	view = m.View()
	if !strings.Contains(view, "second") || !strings.Contains(view, "archived") {
		t.Errorf("trash view should show archived badge for second:\n%s", view)
	}
	if !strings.Contains(view, "empty trash") {
		t.Errorf("trash view should offer purge:\n%s", view)
	}
}

func TestListModel_EmptyStates(t *testing.T) {
	tests := []struct {
		filter domain.Filter
		want   string
	}{
		{domain.FilterActive, "No notes yet"},
		{domain.FilterArchived, "No archived notes."},
		{domain.FilterRemoved, "Trash is empty."},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			store := newListStore()
			store.SetFilter(tt.filter)
			m := NewListModel(store, nil)
			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, view)
			}
		})
	}
}

func TestListModel_FilterKeysWrap(t *testing.T) {
	store := newListStore()
	m := NewListModel(store, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if store.Filter() != domain.FilterRemoved {
		t.Errorf("shift+tab from active = %s, want removed", store.Filter())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if store.Filter() != domain.FilterActive {
		t.Errorf("tab from removed = %s, want active", store.Filter())
	}
}

func TestListModel_EditCarriesSelectedNote(t *testing.T) {
	store := newListStore("a", "b")
	m := NewListModel(store, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SwitchToFormMsg)
	if !ok || msg.Note == nil {
		t.Fatalf("expected SwitchToFormMsg with a note, got %#v", msg)
	}
	if msg.Note.Text != "a" {
		t.Errorf("note text = %q, want a", msg.Note.Text)
	}
}

func TestListModel_CopyWithoutClipboard(t *testing.T) {
	m := NewListModel(newListStore("a"), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	msg, ok := cmd().(ErrMsg)
	if !ok || !strings.Contains(msg.Err.Error(), "clipboard unavailable") {
		t.Errorf("expected clipboard unavailable error, got %#v", msg)
	}
}

func TestListModel_ExternalEditCarriesSelectedNote(t *testing.T) {
	store := newListStore("a", "b")
	m := NewListModel(store, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("E")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(OpenEditorMsg)
	if !ok {
		t.Fatalf("expected OpenEditorMsg, got %T", cmd())
	}
	if msg.Note.ID != 101 {
		t.Errorf("Note.ID = %d, want 101", msg.Note.ID)
	}
}

func TestRenderNote(t *testing.T) {
	tests := []struct {
		name     string
		note     domain.Note
		selected bool
		want     []string
		notWant  []string
	}{
		{
			name: "plain",
			note: domain.Note{ID: 7, Text: "buy milk"},
			want: []string{"7", "buy milk"},
		},
		{
			name:     "selected gets a marker",
			note:     domain.Note{ID: 7, Text: "buy milk"},
			selected: true,
			want:     []string{"> "},
		},
		{
			name: "multiline text is flattened",
			note: domain.Note{ID: 7, Text: "line one\nline two"},
			want: []string{"line one line two"},
		},
		{
			name: "empty text placeholder",
			note: domain.Note{ID: 7},
			want: []string{"(empty)"},
		},
		{
			name:    "archived but not removed has no badge",
			note:    domain.Note{ID: 7, Text: "x", Archived: true},
			notWant: []string{"archived"},
		},
		{
			name: "archived and removed shows badge",
			note: domain.Note{ID: 7, Text: "x", Archived: true, Removed: true},
			want: []string{"archived"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderNote(tt.note, tt.selected, 0)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("RenderNote() = %q, missing %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("RenderNote() = %q, should not contain %q", got, w)
				}
			}
		})
	}
}
