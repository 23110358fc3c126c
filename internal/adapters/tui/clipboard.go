package tui

import (
	"github.com/atotto/clipboard"

	"memo/internal/ports"
)

// SystemClipboard implements ports.Clipboard with the OS clipboard
type SystemClipboard struct{}

// Ensure SystemClipboard implements Clipboard
var _ ports.Clipboard = SystemClipboard{}

// WriteAll copies text to the system clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
