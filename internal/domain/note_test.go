package domain

import "testing"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input  string
		want   Filter
		wantOK bool
	}{
		{"active", FilterActive, true},
		{"Archived", FilterArchived, true},
		{" REMOVED ", FilterRemoved, true},
		{"trash", FilterRemoved, true},
		{"", FilterActive, false},
		{"deleted", FilterActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFilter(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseFilter(%q) = (%s, %v), want (%s, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFilter_String(t *testing.T) {
	for _, f := range Filters {
		parsed, ok := ParseFilter(f.String())
		if !ok || parsed != f {
			t.Errorf("ParseFilter(%q) = (%s, %v), want (%s, true)", f.String(), parsed, ok, f)
		}
	}
	if Filter(9).String() != "unknown" {
		t.Errorf("Filter(9).String() = %q, want unknown", Filter(9).String())
	}
}

func TestFilter_NextPrev(t *testing.T) {
	if FilterActive.Next() != FilterArchived {
		t.Error("active.Next() should be archived")
	}
	if FilterRemoved.Next() != FilterActive {
		t.Error("removed.Next() should wrap to active")
	}
	if FilterActive.Prev() != FilterRemoved {
		t.Error("active.Prev() should wrap to removed")
	}
	for _, f := range Filters {
		if f.Next().Prev() != f {
			t.Errorf("%s.Next().Prev() = %s", f, f.Next().Prev())
		}
	}
}

func TestNote_State(t *testing.T) {
	tests := []struct {
		note Note
		want Filter
	}{
		{Note{}, FilterActive},
		{Note{Archived: true}, FilterArchived},
		{Note{Removed: true}, FilterRemoved},
		{Note{Archived: true, Removed: true}, FilterRemoved},
	}

	for _, tt := range tests {
		if got := tt.note.State(); got != tt.want {
			t.Errorf("%+v.State() = %s, want %s", tt.note, got, tt.want)
		}
		for _, f := range Filters {
			if f.Matches(tt.note) != (f == tt.want) {
				t.Errorf("%s.Matches(%+v) = %v", f, tt.note, f.Matches(tt.note))
			}
		}
	}
}
