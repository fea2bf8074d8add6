package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/blog"
	"github.com/ziadkadry99/folio/internal/content"
)

func testBundle() *content.Bundle {
	return &content.Bundle{
		Config: &content.SiteConfig{
			Name:    "Jane Doe",
			Tagline: "Engineer",
			Email:   "jane@example.com",
			About:   content.About{Bio: []string{"Hi there."}},
		},
		Education: []content.TimelineEntry{
			{Title: "PhD", Subtitle: "Uni", Date: "2018-2022", Overview: []string{"Thesis."}},
		},
		Experience: []content.TimelineEntry{
			{Title: "Engineer", Subtitle: "Acme", Date: "2022-now"},
		},
		Projects: []content.Project{
			{Title: "Tool", Description: "A tool.", Technologies: []string{"Go"}},
		},
		Publications: []content.Publication{
			{Title: "Paper", Authors: "J. Doe", Venue: "Conf", Date: "May 2021", Category: "ml"},
			{Title: "Preprint", Date: "forthcoming", Category: "ml"},
		},
	}
}

func testPosts() []blog.Post {
	p1 := blog.Post{Path: "content/blog/first.json"}
	p1.Title = "First Post"
	p1.Excerpt = "Hello world."
	p1.Category = "notes"
	p1.Content = "# First\n\nBody text."

	p2 := blog.Post{Path: "content/blog/second.json"}
	p2.Title = "Second Post"
	p2.Excerpt = "More words."
	p2.Category = "notes"
	// No content: the page shows the placeholder.

	return []blog.Post{p1, p2}
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(out, "Jane Doe", "light", testBundle(), testPosts())

	pages, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3 (index + 2 posts)", pages)
	}

	for _, name := range []string{"index.html", "style.css", "script.js", "search-index.json",
		filepath.Join("blog", "first.html"), filepath.Join("blog", "second.html")} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	for _, want := range []string{
		"Jane Doe",
		`data-expanded="false"`,
		`data-year="2021"`,
		`data-filter="all"`,
		"First Post",
		`data-theme="light"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	// The publication without a derived year carries no data-year.
	if strings.Contains(html, `data-year=""`) {
		t.Error("index.html contains an empty data-year attribute")
	}

	first, err := os.ReadFile(filepath.Join(out, "blog", "first.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(first), "<h1") || !strings.Contains(string(first), "Body text.") {
		t.Errorf("post body not rendered: %s", first)
	}

	second, err := os.ReadFile(filepath.Join(out, "blog", "second.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(second), "Full post coming soon.") {
		t.Error("post without content must show the placeholder")
	}
}

func TestGenerateSearchIndex(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(out, "Jane Doe", "light", testBundle(), testPosts())
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "search-index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var entries []searchIndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("search index not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(entries))
	}
	if entries[0].Href != "blog/first.html" {
		t.Errorf("entries[0].Href = %q", entries[0].Href)
	}
}

func TestGenerateEmptyBlogSet(t *testing.T) {
	// Both discovery strategies failing yields an empty blog section and
	// no empty-state message.
	out := t.TempDir()
	g := NewGenerator(out, "Jane Doe", "dark", testBundle(), nil)
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	if !strings.Contains(html, `id="blog-grid"`) {
		t.Error("blog container missing")
	}
	if strings.Contains(html, "blog-card") {
		t.Error("unexpected blog cards in empty blog set")
	}
	if strings.Contains(html, "No results") {
		t.Error("empty blog set must not show the search no-results message")
	}
}

func TestGenerateWithoutBundle(t *testing.T) {
	g := NewGenerator(t.TempDir(), "X", "light", nil, nil)
	if _, err := g.Generate(); err == nil {
		t.Error("expected error without a bundle")
	}
}
