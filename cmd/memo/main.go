package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"memo/internal/adapters/editor"
	"memo/internal/adapters/memory"
	"memo/internal/adapters/tui"
	"memo/internal/config"
	"memo/internal/logging"
	"memo/internal/ports"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewForTerminal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize adapters
	store := memory.NewStore(time.Now, logger)
	store.SetFilter(cfg.StartFilter())

	var clip ports.Clipboard
	if sys := (tui.SystemClipboard{}); sys.Available() {
		clip = sys
	} else {
		logger.Info("clipboard unavailable, copy disabled")
	}

	// Create and run TUI app
	app := tui.NewApp(store, clip, editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
