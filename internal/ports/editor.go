package ports

import "os/exec"

// Editor builds the command that opens a file in the user's editor
type Editor interface {
	// Command returns an exec.Cmd for opening a file in the editor.
	// It is meant to be handed to bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
