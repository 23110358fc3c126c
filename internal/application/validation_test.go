package application

import (
	"errors"
	"testing"
	"time"

	"memo/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "text",
			value:     "buy milk",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "text",
			value:     "",
			wantErr:   true,
			wantMsg:   "text: text is required",
		},
		{
			name:      "whitespace only",
			fieldName: "noteRef",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "noteRef: note reference is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if valErr.Field != tt.fieldName {
				t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Error("expected error to match ErrInvalidInput")
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("archived")
	if err != nil || f != FilterArchived {
		t.Errorf("ParseFilter(archived) = (%s, %v)", f, err)
	}

	_, err = ParseFilter("starred")
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func newStore(t *testing.T, texts ...string) *domain.NoteStore {
	t.Helper()
	store := domain.NewNoteStore(func() time.Time { return time.UnixMilli(100) })
	for _, text := range texts {
		if _, ok := store.Create(text); !ok {
			t.Fatalf("Create(%q) rejected", text)
		}
	}
	return store
}

func TestResolveRef(t *testing.T) {
	// Created oldest first, so the view is [c(102), b(101), a(100)].
	store := newStore(t, "a", "b", "c")

	tests := []struct {
		name    string
		ref     string
		want    domain.ID
		wantErr bool
	}{
		{name: "numeric id", ref: "101", want: 101},
		{name: "unknown numeric id passes through", ref: "555", want: 555},
		{name: "first position", ref: "@1", want: 102},
		{name: "last position", ref: "@3", want: 100},
		{name: "position past end", ref: "@4", want: 0},
		{name: "surrounding spaces", ref: "  @2 ", want: 101},
		{name: "empty", ref: "", wantErr: true},
		{name: "zero position", ref: "@0", wantErr: true},
		{name: "bad position", ref: "@x", wantErr: true},
		{name: "negative id", ref: "-5", wantErr: true},
		{name: "garbage", ref: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRef(store, tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveRef(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidRef) {
					t.Errorf("expected ErrInvalidRef, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ResolveRef(%q) = %d, want %d", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveRef_FollowsFilter(t *testing.T) {
	store := newStore(t, "a", "b")
	store.SetArchived(101, true)
	store.SetFilter(domain.FilterArchived)

	got, err := ResolveRef(store, "@1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 101 {
		t.Errorf("ResolveRef(@1) = %d, want 101", got)
	}
}
