package config

import (
	"testing"

	"memo/internal/domain"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantFilter  domain.Filter
		wantLogFile string
		wantVerbose bool
	}{
		{
			name:       "defaults",
			env:        map[string]string{},
			wantFilter: domain.FilterActive,
		},
		{
			name: "all set",
			env: map[string]string{
				"MEMO_FILTER":   "removed",
				"MEMO_LOG_FILE": "/tmp/memo.log",
				"MEMO_VERBOSE":  "true",
			},
			wantFilter:  domain.FilterRemoved,
			wantLogFile: "/tmp/memo.log",
			wantVerbose: true,
		},
		{
			name: "unknown filter falls back to active",
			env: map[string]string{
				"MEMO_FILTER":  "starred",
				"MEMO_VERBOSE": "nope",
			},
			wantFilter: domain.FilterActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"MEMO_FILTER", "MEMO_LOG_FILE", "MEMO_VERBOSE"} {
				t.Setenv(key, tt.env[key])
			}

			cfg := Load()
			if cfg.StartFilter() != tt.wantFilter {
				t.Errorf("StartFilter() = %s, want %s", cfg.StartFilter(), tt.wantFilter)
			}
			if cfg.LogFile != tt.wantLogFile {
				t.Errorf("LogFile = %q, want %q", cfg.LogFile, tt.wantLogFile)
			}
			if cfg.Verbose != tt.wantVerbose {
				t.Errorf("Verbose = %v, want %v", cfg.Verbose, tt.wantVerbose)
			}
		})
	}
}
