package theme

import (
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/folio/internal/db"
)

func TestCurrentDefaults(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	s := NewStore(database, "")
	got, err := s.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got != Light {
		t.Errorf("default theme = %q, want %q", got, Light)
	}
}

func TestSetRejectsUnknown(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	s := NewStore(database, Light)
	if err := s.Set("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestToggle(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	s := NewStore(database, Light)
	got, err := s.Toggle()
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got != Dark {
		t.Errorf("first toggle = %q, want %q", got, Dark)
	}
	got, err = s.Toggle()
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if got != Light {
		t.Errorf("second toggle = %q, want %q", got, Light)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")

	database, err := db.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s := NewStore(database, Light)
	if _, err := s.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	database.Close()

	// A fresh session reads the persisted value before any toggle.
	database, err = db.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	got, err := NewStore(database, Light).Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got != Dark {
		t.Errorf("persisted theme = %q, want %q", got, Dark)
	}
}
