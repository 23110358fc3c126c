package config

import (
	"os"
	"strconv"

	"memo/internal/domain"
)

const DefaultFilter = "active"

// Config holds settings read from the environment
type Config struct {
	Filter  string // initial view: active, archived or removed
	LogFile string // empty means stderr (or no logging in the TUI)
	Verbose bool
}

// Load reads MEMO_FILTER, MEMO_LOG_FILE and MEMO_VERBOSE, falling back to
// defaults for unset values.
func Load() Config {
	return Config{
		Filter:  InitialFilter(),
		LogFile: os.Getenv("MEMO_LOG_FILE"),
		Verbose: verbose(),
	}
}

// InitialFilter returns the filter name from MEMO_FILTER env var,
// falling back to DefaultFilter.
func InitialFilter() string {
	if env := os.Getenv("MEMO_FILTER"); env != "" {
		return env
	}
	return DefaultFilter
}

// StartFilter resolves the configured filter name; unknown names fall
// back to the active view.
func (c Config) StartFilter() domain.Filter {
	f, _ := domain.ParseFilter(c.Filter)
	return f
}

func verbose() bool {
	v, err := strconv.ParseBool(os.Getenv("MEMO_VERBOSE"))
	return err == nil && v
}
