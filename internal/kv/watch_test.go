package kv

import (
	"testing"
	"time"
)

const tick = 5 * time.Millisecond

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev, ok := <-w.Events():
		if !ok {
			t.Fatal("events channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
	return Event{}
}

func TestWatcherReportsExternalChange(t *testing.T) {
	db, err := OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := db.Set("checklists", "[]"); err != nil {
		t.Fatal(err)
	}

	w := Watch(db, "checklists", tick, "[]", true)
	defer w.Close()

	// Simulate another process writing the same key.
	if err := db.Set("checklists", `[{"slug":"x"}]`); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w)
	if ev.Key != "checklists" || ev.Raw != `[{"slug":"x"}]` {
		t.Fatalf("event = %+v", ev)
	}
}

func TestWatcherIgnoresOwnWrites(t *testing.T) {
	db, err := OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	w := Watch(db, "checklists", tick, "", false)
	defer w.Close()

	// Mark before writing, the way the store commits.
	w.Mark("[1]")
	if err := db.Set("checklists", "[1]"); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("own write echoed back: %+v", ev)
	case <-time.After(20 * tick):
	}
}

// A write can land between the caller reading the key and the watcher
// starting. Because the caller's read is the baseline, that write must
// still come through as a change.
func TestWatcherReportsWriteBetweenReadAndWatch(t *testing.T) {
	db, err := OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	// The caller read "[]"; another process has already replaced it.
	if err := db.Set("checklists", `[{"slug":"x"}]`); err != nil {
		t.Fatal(err)
	}

	w := Watch(db, "checklists", tick, "[]", true)
	defer w.Close()

	ev := waitEvent(t, w)
	if ev.Raw != `[{"slug":"x"}]` {
		t.Fatalf("event = %+v", ev)
	}
}

func TestWatcherCloseStopsDelivery(t *testing.T) {
	db, err := OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	w := Watch(db, "checklists", tick, "", false)
	w.Close()

	if _, ok := <-w.Events(); ok {
		t.Fatal("events channel must be closed after Close")
	}
}
