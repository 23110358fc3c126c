package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"memo/internal/ports"
)

// ErrNoEditor is returned when neither $EDITOR, $VISUAL nor a known editor is available
var ErrNoEditor = errors.New("no editor found: set $EDITOR environment variable")

// Opener implements ports.Editor
type Opener struct {
	lookPath func(string) (string, error)
}

// Ensure Opener implements Editor
var _ ports.Editor = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath}
}

// Command returns an exec.Cmd for opening a file in the editor
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, ErrNoEditor
	}

	// $EDITOR may carry flags, e.g. "code --wait"
	fields := strings.Fields(editor)
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

// WriteDraft writes a note's text to a temporary file and returns its path
func WriteDraft(text string) (string, error) {
	f, err := os.CreateTemp("", "memo-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create draft: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write draft: %w", err)
	}
	return f.Name(), nil
}

// ReadDraft reads an edited draft and deletes it. Trailing newlines added
// by the editor are dropped.
func ReadDraft(path string) (string, error) {
	defer os.Remove(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return strings.TrimRight(string(content), "\r\n"), nil
}
