// Package blog discovers and loads the open-ended set of blog-post
// documents that accompany the fixed portfolio content.
package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/folio/internal/content"
)

// Discoverer resolves the list of blog-post file paths to load. Strategies
// are tried in order; the first one that yields entries wins. Failure of a
// strategy is logged and non-fatal.
type Discoverer struct {
	Fetcher  content.Fetcher
	BasePath string   // slash path of the blog directory, e.g. "content/blog"
	Manifest string   // manifest file name within BasePath, e.g. "manifest.json"
	Include  []string // doublestar patterns matched against base names; empty means *.json
}

// NewDiscoverer creates a Discoverer with the conventional blog layout.
func NewDiscoverer(f content.Fetcher, basePath string) *Discoverer {
	return &Discoverer{
		Fetcher:  f,
		BasePath: strings.Trim(basePath, "/"),
		Manifest: "manifest.json",
	}
}

// Discover returns the ordered, de-duplicated list of blog-post paths.
// An empty result with a nil error means no posts exist (or every strategy
// failed); the caller renders an empty blog section in that case.
func (d *Discoverer) Discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategies := []struct {
		name string
		run  func(context.Context) ([]string, error)
	}{
		{"directory listing", d.fromListing},
		{"manifest", d.fromManifest},
	}

	var found []string
	for _, s := range strategies {
		paths, err := s.run(ctx)
		if err != nil {
			log.Printf("blog discovery via %s failed: %v", s.name, err)
			continue
		}
		found = append(found, paths...)
		if len(found) > 0 {
			break
		}
	}
	return dedupe(found), nil
}

// fromListing scrapes an HTML directory listing at the blog base path and
// keeps the anchors that look like post files.
func (d *Discoverer) fromListing(ctx context.Context) ([]string, error) {
	data, err := d.Fetcher.Fetch(ctx, d.BasePath+"/")
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing listing: %w", err)
	}

	var paths []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if p, ok := d.normalizeHref(attr.Val); ok {
					paths = append(paths, p)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return paths, nil
}

// normalizeHref filters and normalizes one listing anchor. Parent links,
// sort/query links and the manifest itself are discarded; only .json files
// survive. Bare names are joined onto the base path and a leading slash is
// stripped.
func (d *Discoverer) normalizeHref(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "?") {
		return "", false
	}
	// Parent links are discarded segment-wise; ".." inside a file name
	// (my..post.json) is legal.
	for _, seg := range strings.Split(strings.TrimSuffix(href, "/"), "/") {
		if seg == ".." {
			return "", false
		}
	}
	if !strings.HasSuffix(href, ".json") {
		return "", false
	}
	name := path.Base(href)
	if name == d.Manifest {
		return "", false
	}
	if !d.matchesInclude(name) {
		return "", false
	}
	p := href
	if !strings.Contains(strings.TrimPrefix(p, "/"), "/") {
		p = path.Join(d.BasePath, name)
	}
	p = strings.TrimPrefix(p, "/")
	return p, true
}

// fromManifest loads the manifest JSON array of base names and maps each
// to <base>/<name>.json.
func (d *Discoverer) fromManifest(ctx context.Context) ([]string, error) {
	data, err := d.Fetcher.Fetch(ctx, path.Join(d.BasePath, d.Manifest))
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	var paths []string
	for _, name := range names {
		name = strings.TrimSuffix(strings.TrimSpace(name), ".json")
		if name == "" {
			continue
		}
		if !d.matchesInclude(name + ".json") {
			continue
		}
		paths = append(paths, path.Join(d.BasePath, name+".json"))
	}
	return paths, nil
}

func (d *Discoverer) matchesInclude(name string) bool {
	patterns := d.Include
	if len(patterns) == 0 {
		patterns = []string{"*.json"}
	}
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
