// Package site assembles the rendered portfolio into a static HTML site
// and serves it locally with search, theme and filter APIs.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/folio/internal/blog"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/render"
)

// Generator builds the static site from one loaded content bundle and the
// blog posts that survived the best-effort load loop.
type Generator struct {
	OutputDir string
	SiteName  string
	Theme     string // initial data-theme attribute, "light" or "dark"
	Bundle    *content.Bundle
	Posts     []blog.Post
}

// NewGenerator creates a Generator.
func NewGenerator(outputDir, siteName, theme string, bundle *content.Bundle, posts []blog.Post) *Generator {
	return &Generator{
		OutputDir: outputDir,
		SiteName:  siteName,
		Theme:     theme,
		Bundle:    bundle,
		Posts:     posts,
	}
}

// pageData is the data passed to the page shell template.
type pageData struct {
	Title    string
	SiteName string
	Theme    string
	BasePath string
	Content  template.HTML
}

// searchIndexEntry is one card in the emitted search-index.json.
type searchIndexEntry struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Href     string `json:"href"`
}

// Generate writes the full site. Returns the number of HTML pages written.
func (g *Generator) Generate() (int, error) {
	if g.Bundle == nil || g.Bundle.Config == nil {
		return 0, fmt.Errorf("no content bundle to generate from")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	pages := 0

	// Index page: every section in document order.
	index, err := g.renderIndex()
	if err != nil {
		return 0, err
	}
	if err := g.writePage(tmpl, "index.html", pageData{
		Title:    g.Bundle.Config.Name,
		SiteName: g.SiteName,
		Theme:    g.Theme,
		BasePath: "",
		Content:  template.HTML(index),
	}); err != nil {
		return 0, err
	}
	pages++

	// One page per blog post.
	for _, p := range g.Posts {
		body, err := g.renderPost(p)
		if err != nil {
			return 0, err
		}
		out := filepath.FromSlash(render.PostHref(p.Path))
		if err := g.writePage(tmpl, out, pageData{
			Title:    p.Title,
			SiteName: g.SiteName,
			Theme:    g.Theme,
			BasePath: "../",
			Content:  template.HTML(body),
		}); err != nil {
			return 0, err
		}
		pages++
	}

	// Static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}
	if err := g.writeSearchIndex(); err != nil {
		return 0, err
	}

	return pages, nil
}

// renderIndex renders every portfolio section into one HTML fragment.
func (g *Generator) renderIndex() (string, error) {
	var nodes []*render.Node
	nodes = append(nodes, render.Profile(g.Bundle.Config)...)
	nodes = append(nodes,
		render.Timeline("education", "Education", g.Bundle.Education),
		render.Timeline("experience", "Experience", g.Bundle.Experience),
		render.Projects(g.Bundle.Projects),
	)
	pubs, _ := render.Publications(g.Bundle.Publications)
	nodes = append(nodes, pubs, render.BlogSection(g.Posts))

	var b strings.Builder
	if err := render.WriteHTML(&b, nodes...); err != nil {
		return "", fmt.Errorf("rendering index: %w", err)
	}
	return b.String(), nil
}

// renderPost renders one blog-post page body.
func (g *Generator) renderPost(p blog.Post) (string, error) {
	body, err := render.PostBody(p)
	if err != nil {
		return "", err
	}

	article := render.El("article").WithClass("blog-post")
	article.Append(render.El("h1", render.Text(p.Title)).WithClass("blog-post-title"))
	meta := render.El("p").WithClass("blog-meta")
	if p.Date != "" {
		meta.Append(render.El("span", render.Text(p.Date)).WithClass("blog-date"))
	}
	if p.Category != "" {
		if len(meta.Children) > 0 {
			meta.Append(render.Text(" · "))
		}
		meta.Append(render.El("span", render.Text(p.Category)).WithClass("blog-category"))
	}
	if len(meta.Children) > 0 {
		article.Append(meta)
	}
	if p.Image != "" {
		article.Append(render.El("img").
			WithClass("blog-post-image").
			WithAttr("src", p.Image).
			WithAttr("alt", p.Title))
	}
	article.Append(body)
	article.Append(render.El("p",
		render.El("a", render.Text("← Back")).WithAttr("href", "../index.html#blog"),
	).WithClass("blog-post-back"))

	var b bytes.Buffer
	if err := render.WriteHTML(&b, article); err != nil {
		return "", fmt.Errorf("rendering post %s: %w", p.Path, err)
	}
	return b.String(), nil
}

func (g *Generator) writePage(tmpl *template.Template, relPath string, data pageData) error {
	outPath := filepath.Join(g.OutputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering %s: %w", relPath, err)
	}
	return nil
}

func (g *Generator) writeSearchIndex() error {
	entries := make([]searchIndexEntry, 0, len(g.Posts))
	for _, p := range g.Posts {
		entries = append(entries, searchIndexEntry{
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Category: p.Category,
			Href:     render.PostHref(p.Path),
		})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling search index: %w", err)
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "search-index.json"), data, 0o644)
}
