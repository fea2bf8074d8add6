// Package search implements the blog-card search engine: case-insensitive
// substring matching over each card's title, excerpt and category, with
// highlight markup recomputed from scratch on every call.
package search

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/blog"
)

// Card is the searchable projection of one blog post. TitleHTML and
// ExcerptHTML are derived from the plain text on every search, so
// highlighting never layers.
type Card struct {
	ID          string
	Path        string
	Title       string
	Excerpt     string
	Category    string
	Visible     bool
	TitleHTML   string
	ExcerptHTML string
}

// Result summarizes one search pass. Cards is the card states as computed
// by this exact pass, so a result is self-consistent even when other
// searches run concurrently.
type Result struct {
	Query        string
	VisibleCount int
	// Message is the no-results text, present only when a non-empty
	// query matched nothing.
	Message string
	Cards   []Card
}

// Engine holds the full ordered card list and the current query. The card
// list is populated once after the blog load loop completes; every search
// recomputes visibility and highlighting from scratch, so calls are
// order-independent.
type Engine struct {
	mu    sync.Mutex
	cards []*Card
	query string
}

// NewEngine creates an engine over the loaded posts, in arrival order, and
// establishes initial visibility (empty query, all visible).
func NewEngine(posts []blog.Post) *Engine {
	e := &Engine{}
	for _, p := range posts {
		e.cards = append(e.cards, &Card{
			ID:       uuid.NewString(),
			Path:     p.Path,
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Category: p.Category,
		})
	}
	e.Search("")
	return e
}

// Cards returns the current card states in list order.
func (e *Engine) Cards() []Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Card, len(e.cards))
	for i, c := range e.cards {
		out[i] = *c
	}
	return out
}

// Search normalizes the query (lower-case, trimmed) and recomputes every
// card's visibility and highlight markup. The query is always treated as
// literal text; there is no pattern syntax.
func (e *Engine) Search(query string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	e.query = q

	visible := 0
	for _, c := range e.cards {
		haystack := strings.ToLower(c.Title + " " + c.Excerpt + " " + c.Category)
		c.Visible = q == "" || strings.Contains(haystack, q)
		if c.Visible {
			visible++
		}
		if q == "" {
			// Strip all highlight markup back to plain text.
			c.TitleHTML = html.EscapeString(c.Title)
			c.ExcerptHTML = html.EscapeString(c.Excerpt)
		} else {
			c.TitleHTML = highlight(c.Title, q)
			c.ExcerptHTML = highlight(c.Excerpt, q)
		}
	}

	res := Result{Query: q, VisibleCount: visible, Cards: make([]Card, len(e.cards))}
	for i, c := range e.cards {
		res.Cards[i] = *c
	}
	if visible == 0 && q != "" {
		res.Message = fmt.Sprintf("No results for %q", q)
	}
	return res
}

// Reload replaces the card set after a rebuild and re-applies the current
// query to the new cards.
func (e *Engine) Reload(posts []blog.Post) {
	e.mu.Lock()
	q := e.query
	e.cards = e.cards[:0]
	for _, p := range posts {
		e.cards = append(e.cards, &Card{
			ID:       uuid.NewString(),
			Path:     p.Path,
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Category: p.Category,
		})
	}
	e.mu.Unlock()
	e.Search(q)
}

// Query returns the current normalized query.
func (e *Engine) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// highlight wraps every non-overlapping case-insensitive occurrence of q
// in text with a mark element, escaping everything else. It always starts
// from the plain text, never from previously highlighted markup.
func highlight(text, q string) string {
	if q == "" {
		return html.EscapeString(text)
	}
	lower := strings.ToLower(text)
	var b strings.Builder
	pos := 0
	for {
		idx := strings.Index(lower[pos:], q)
		if idx < 0 {
			break
		}
		idx += pos
		b.WriteString(html.EscapeString(text[pos:idx]))
		b.WriteString(`<mark class="search-highlight">`)
		b.WriteString(html.EscapeString(text[idx : idx+len(q)]))
		b.WriteString(`</mark>`)
		pos = idx + len(q)
	}
	b.WriteString(html.EscapeString(text[pos:]))
	return b.String()
}
