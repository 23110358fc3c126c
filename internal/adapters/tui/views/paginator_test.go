package views

import "testing"

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if start, end := p.VisibleRange(); start != 0 || end != 3 {
		t.Errorf("VisibleRange() = (%d, %d), want (0, 3)", start, end)
	}

	for i := 0; i < 3; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 3 || p.CurrentPage() != 2 {
		t.Errorf("cursor %d page %d, want cursor 3 page 2", p.Cursor(), p.CurrentPage())
	}
	if p.TotalPages() != 3 {
		t.Errorf("TotalPages() = %d, want 3", p.TotalPages())
	}

	for i := 0; i < 10; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 6 {
		t.Errorf("cursor = %d, want 6 (clamped)", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("VisibleRange() = (%d, %d), want (6, 7)", start, end)
	}

	// Shrinking the list pulls the cursor back.
	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("after shrink cursor %d page %d, want cursor 1 page 1", p.Cursor(), p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 || p.TotalPages() != 1 {
		t.Errorf("empty: cursor %d pages %d", p.Cursor(), p.TotalPages())
	}
	if p.CursorUp() || p.CursorDown() {
		t.Error("cursor moved on empty list")
	}
}

func TestPaginator_SetPageSize(t *testing.T) {
	p := NewPaginator(0)
	p.SetTotal(30)
	for i := 0; i < 12; i++ {
		p.CursorDown()
	}
	if p.CurrentPage() != 2 {
		t.Fatalf("page = %d, want 2 with default size 10", p.CurrentPage())
	}

	p.SetPageSize(5)
	if p.CurrentPage() != 3 {
		t.Errorf("page = %d, want 3 with size 5", p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 10 || end != 15 {
		t.Errorf("VisibleRange() = (%d, %d), want (10, 15)", start, end)
	}
}
