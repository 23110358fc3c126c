package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"memo/internal/domain"
)

func TestStore_LogsMutations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	store := NewStore(func() time.Time { return time.UnixMilli(42) }, zap.New(core))

	note, ok := store.Create("hello")
	if !ok {
		t.Fatal("Create rejected non-empty text")
	}
	store.Create("")
	store.SetArchived(note.ID, true)
	store.SetRemoved(999, true)
	store.SetFilter(domain.FilterArchived)
	store.PurgeRemoved()

	wantMessages := []string{
		"created note",
		"ignored empty note",
		"updated note",
		"updated note",
		"set filter",
		"purged removed notes",
	}
	entries := logs.All()
	if len(entries) != len(wantMessages) {
		t.Fatalf("got %d log entries, want %d", len(entries), len(wantMessages))
	}
	for i, want := range wantMessages {
		if entries[i].Message != want {
			t.Errorf("entry %d = %q, want %q", i, entries[i].Message, want)
		}
	}

	applied := logs.FilterMessage("updated note").AllUntimed()
	if got := applied[0].ContextMap()["applied"]; got != true {
		t.Errorf("first update applied = %v, want true", got)
	}
	if got := applied[1].ContextMap()["applied"]; got != false {
		t.Errorf("unknown id update applied = %v, want false", got)
	}
}

func TestStore_DelegatesToCore(t *testing.T) {
	store := NewStore(nil, nil)

	a, _ := store.Create("a")
	b, _ := store.Create("b")
	store.SetText(a.ID, "a2")
	store.SetRemoved(b.ID, true)

	if got := store.VisibleNotes(); len(got) != 1 || got[0].Text != "a2" {
		t.Errorf("VisibleNotes() = %v", got)
	}
	if got := store.NotesIn(domain.FilterRemoved); len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("NotesIn(removed) = %v", got)
	}
	if got := store.Counts(); got != (domain.Counts{Active: 1, Removed: 1}) {
		t.Errorf("Counts() = %+v", got)
	}
	if _, ok := store.Get(b.ID); !ok {
		t.Error("Get(b) not found")
	}
	if store.PurgeRemoved() != 1 {
		t.Error("PurgeRemoved() should drop one note")
	}
	if _, ok := store.Get(b.ID); ok {
		t.Error("purged note still found")
	}
	if store.Filter() != domain.FilterActive {
		t.Errorf("Filter() = %s", store.Filter())
	}
}

func TestStore_ConcurrentCreatesKeepIDsUnique(t *testing.T) {
	store := NewStore(func() time.Time { return time.UnixMilli(1) }, nil)

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				note, _ := store.Create(fmt.Sprintf("w%d-%d", w, i))
				store.SetArchived(note.ID, i%2 == 0)
			}
		}(w)
	}
	wg.Wait()

	counts := store.Counts()
	if counts.Total() != workers*perWorker {
		t.Fatalf("Total() = %d, want %d", counts.Total(), workers*perWorker)
	}

	seen := map[domain.ID]bool{}
	for _, f := range domain.Filters {
		for _, n := range store.NotesIn(f) {
			if seen[n.ID] {
				t.Fatalf("duplicate id %d", n.ID)
			}
			seen[n.ID] = true
		}
	}
}
