// Package theme persists the site's light/dark preference under a fixed
// key, read once at startup and written on every change.
package theme

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/folio/internal/db"
)

// Theme names form a closed enum.
const (
	Light = "light"
	Dark  = "dark"
)

// Key is the fixed preferences key the theme is stored under.
const Key = "theme"

// Store reads and writes the persisted theme.
type Store struct {
	db  *db.DB
	def string
}

// NewStore creates a Store. def is the value reported when nothing has
// been persisted yet; empty means Light.
func NewStore(database *db.DB, def string) *Store {
	if def != Light && def != Dark {
		def = Light
	}
	return &Store{db: database, def: def}
}

// Current returns the persisted theme, or the default when the key is
// absent. Unknown persisted values fall back to the default rather than
// erroring.
func (s *Store) Current() (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, Key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return s.def, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading theme: %w", err)
	}
	if value != Light && value != Dark {
		return s.def, nil
	}
	return value, nil
}

// Set persists the given theme.
func (s *Store) Set(name string) error {
	if name != Light && name != Dark {
		return fmt.Errorf("unknown theme %q: must be %q or %q", name, Light, Dark)
	}
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		Key, name)
	if err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	return nil
}

// Toggle flips the persisted theme and returns the new value.
func (s *Store) Toggle() (string, error) {
	current, err := s.Current()
	if err != nil {
		return "", err
	}
	next := Light
	if current == Light {
		next = Dark
	}
	if err := s.Set(next); err != nil {
		return "", err
	}
	return next, nil
}
