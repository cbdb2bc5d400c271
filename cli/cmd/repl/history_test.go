package repl

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestHistory_WriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	for _, entry := range []string{"$(eval '1')", "$(eval '2')", ""} {
		if err := h.Write(entry); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries (empty dropped), got %d", h.Len())
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 persisted entries, got %d", reloaded.Len())
	}

	entry, err := reloaded.Entry(0)
	if err != nil {
		t.Fatalf("entry error: %v", err)
	}

	if entry != "$(eval '1')" {
		t.Errorf("expected oldest entry first, got %q", entry)
	}
}

func TestHistory_Dedup(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	for _, entry := range []string{"a", "b", "a", "a"} {
		if err := h.Write(entry); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}

	last, err := h.Entry(h.Len() - 1)
	if err != nil {
		t.Fatalf("entry error: %v", err)
	}

	if last != "a" {
		t.Errorf("expected duplicate moved to end, got %q", last)
	}
}

func TestHistory_LoadMissing(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))

	if err := h.Load(); err != nil {
		t.Errorf("missing file must not error: %v", err)
	}
}

func TestHistory_EntryOutOfBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	if _, err := h.Entry(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}
