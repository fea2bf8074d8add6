package blog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/db"
)

// Cache records loaded posts in the post_cache table so repeated builds
// can report what changed and the theme/preferences database doubles as a
// local index of the blog set.
type Cache struct {
	db *db.DB
}

// NewCache creates a Cache over the given database.
func NewCache(database *db.DB) *Cache {
	return &Cache{db: database}
}

// Put upserts one post keyed by its source path. New paths get a fresh ID;
// existing rows keep theirs.
func (c *Cache) Put(p Post) error {
	_, err := c.db.Exec(`
		INSERT INTO post_cache (id, path, title, excerpt, date, category, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			excerpt = excluded.excerpt,
			date = excluded.date,
			category = excluded.category,
			fetched_at = excluded.fetched_at`,
		uuid.NewString(), p.Path, p.Title, p.Excerpt, p.Date, p.Category)
	if err != nil {
		return fmt.Errorf("caching post %s: %w", p.Path, err)
	}
	return nil
}

// CachedPost is one row of the post cache.
type CachedPost struct {
	ID       string
	Path     string
	Title    string
	Excerpt  string
	Date     string
	Category string
}

// List returns all cached posts ordered by path.
func (c *Cache) List() ([]CachedPost, error) {
	rows, err := c.db.Query(`
		SELECT id, path, title, excerpt, date, category
		FROM post_cache ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("listing post cache: %w", err)
	}
	defer rows.Close()

	var out []CachedPost
	for rows.Next() {
		var p CachedPost
		if err := rows.Scan(&p.ID, &p.Path, &p.Title, &p.Excerpt, &p.Date, &p.Category); err != nil {
			return nil, fmt.Errorf("scanning post cache row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
