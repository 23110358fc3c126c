package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"memo/internal/adapters/tui/styles"
	"memo/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderTabs renders one tab per filter with its note count, highlighting current
func RenderTabs(current domain.Filter, counts domain.Counts) string {
	var tabs []string
	for _, f := range domain.Filters {
		label := fmt.Sprintf("%s (%d)", TabName(f), counts.Of(f))
		if f == current {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderNote renders a single list row. Text is kept on one line and
// clipped to width when width is known.
func RenderNote(note domain.Note, selected bool, width int) string {
	text := strings.ReplaceAll(note.Text, "\n", " ")
	if text == "" {
		text = "(empty)"
	}
	if width > 0 {
		text = lipgloss.NewStyle().MaxWidth(max(width-24, 10)).Render(text)
	}

	var style lipgloss.Style
	switch note.State() {
	case domain.FilterArchived:
		style = styles.NoteArchived
	case domain.FilterRemoved:
		style = styles.NoteRemoved
	default:
		style = styles.NoteActive
	}
	if selected {
		style = styles.NoteSelected
	}

	line := styles.NoteID.Render(fmt.Sprintf("%-14s", note.ID)) + " " + style.Render(text)
	if note.Archived && note.Removed {
		line += " " + styles.Badge.Render("archived")
	}
	if selected {
		return "> " + line
	}
	return "  " + line
}

// TabName is the label a filter gets in the tab bar
func TabName(f domain.Filter) string {
	switch f {
	case domain.FilterArchived:
		return "Archived"
	case domain.FilterRemoved:
		return "Trash"
	default:
		return "Active"
	}
}

// EmptyViewText is shown when a filter selects no notes
func EmptyViewText(f domain.Filter) string {
	switch f {
	case domain.FilterArchived:
		return "No archived notes."
	case domain.FilterRemoved:
		return "Trash is empty."
	default:
		return "No notes yet. Press n to write one."
	}
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString("\n")
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString("\n")
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
