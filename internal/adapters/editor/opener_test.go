package editor

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func noEditors(string) (string, error) {
	return "", exec.ErrNotFound
}

func TestOpenerCommand(t *testing.T) {
	tests := []struct {
		name     string
		editor   string
		visual   string
		lookPath func(string) (string, error)
		wantArgs []string
		wantErr  error
	}{
		{
			name:     "uses EDITOR",
			editor:   "nano",
			visual:   "vim",
			lookPath: noEditors,
			wantArgs: []string{"nano", "/tmp/draft.txt"},
		},
		{
			name:     "EDITOR with flags",
			editor:   "code --wait",
			lookPath: noEditors,
			wantArgs: []string{"code", "--wait", "/tmp/draft.txt"},
		},
		{
			name:     "falls back to VISUAL",
			visual:   "emacs",
			lookPath: noEditors,
			wantArgs: []string{"emacs", "/tmp/draft.txt"},
		},
		{
			name: "falls back to known editors",
			lookPath: func(name string) (string, error) {
				if name == "vi" {
					return "/usr/bin/vi", nil
				}
				return "", exec.ErrNotFound
			},
			wantArgs: []string{"/usr/bin/vi", "/tmp/draft.txt"},
		},
		{
			name:     "nothing available",
			lookPath: noEditors,
			wantErr:  ErrNoEditor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)
			o := &Opener{lookPath: tt.lookPath}

			cmd, err := o.Command("/tmp/draft.txt")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Command() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Command() error: %v", err)
			}
			if diff := cmp.Diff(tt.wantArgs, cmd.Args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDraftRoundTrip(t *testing.T) {
	path, err := WriteDraft("buy milk")
	if err != nil {
		t.Fatalf("WriteDraft() error: %v", err)
	}

	// simulate an editor that appends a newline
	if err := os.WriteFile(path, []byte("buy oat milk\n"), 0o600); err != nil {
		t.Fatalf("failed to edit draft: %v", err)
	}

	got, err := ReadDraft(path)
	if err != nil {
		t.Fatalf("ReadDraft() error: %v", err)
	}
	if got != "buy oat milk" {
		t.Errorf("ReadDraft() = %q, want %q", got, "buy oat milk")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("draft %s still exists after ReadDraft", path)
	}
}

func TestReadDraftMissing(t *testing.T) {
	if _, err := ReadDraft("/nonexistent/memo-draft.txt"); err == nil {
		t.Error("expected error for missing draft")
	}
}
