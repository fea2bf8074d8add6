package blog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/db"
)

const listingHTML = `<html><body><pre>
<a href="../">../</a>
<a href="?C=N;O=D">Name</a>
<a href="first-post.json">first-post.json</a>
<a href="second-post.json">second-post.json</a>
<a href="manifest.json">manifest.json</a>
<a href="notes.txt">notes.txt</a>
<a href="first-post.json">first-post.json</a>
</pre></body></html>`

func TestDiscoverFromListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/content/blog/" {
			w.Write([]byte(listingHTML))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	d := NewDiscoverer(content.NewHTTPFetcher(srv.URL), "content/blog")
	paths, err := d.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"content/blog/first-post.json", "content/blog/second-post.json"}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths %v, want %v", len(paths), paths, want)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, p, want[i])
		}
	}
}

func TestDiscoverManifestFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/blog/":
			// Listing unavailable; discovery must fall back.
			http.Error(w, "forbidden", http.StatusForbidden)
		case "/content/blog/manifest.json":
			w.Write([]byte(`["alpha", "beta.json", ""]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	d := NewDiscoverer(content.NewHTTPFetcher(srv.URL), "content/blog")
	paths, err := d.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"content/blog/alpha.json", "content/blog/beta.json"}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, p, want[i])
		}
	}
}

func TestDiscoverBothStrategiesFail(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	d := NewDiscoverer(content.NewHTTPFetcher(srv.URL), "content/blog")
	paths, err := d.Discover(context.Background())
	if err != nil {
		t.Fatalf("discovery failure must be non-fatal, got: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected empty result, got %v", paths)
	}
}

func TestDiscoverEmptyListingFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/content/blog/":
			// Reachable listing with zero usable entries.
			w.Write([]byte(`<pre><a href="../">../</a><a href="readme.txt">readme.txt</a></pre>`))
		case "/content/blog/manifest.json":
			w.Write([]byte(`["gamma"]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	d := NewDiscoverer(content.NewHTTPFetcher(srv.URL), "content/blog")
	paths, err := d.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 1 || paths[0] != "content/blog/gamma.json" {
		t.Errorf("expected manifest fallback result, got %v", paths)
	}
}

func TestLoadPostsBestEffort(t *testing.T) {
	post := func(title string) string {
		return `{"title": "` + title + `", "excerpt": "x", "date": "2024-01-01", "category": "notes"}`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/content/blog/")
		switch name {
		case "p2.json":
			// The failing post must not abort the rest of the loop.
			http.Error(w, "boom", http.StatusInternalServerError)
		case "p4.json":
			w.Write([]byte("{broken"))
		default:
			w.Write([]byte(post(name)))
		}
	}))
	defer srv.Close()

	paths := []string{
		"content/blog/p1.json",
		"content/blog/p2.json",
		"content/blog/p3.json",
		"content/blog/p4.json",
		"content/blog/p5.json",
	}
	posts := LoadPosts(context.Background(), content.NewHTTPFetcher(srv.URL), paths, nil)

	want := []string{"content/blog/p1.json", "content/blog/p3.json", "content/blog/p5.json"}
	if len(posts) != len(want) {
		t.Fatalf("got %d posts, want %d", len(posts), len(want))
	}
	for i, p := range posts {
		if p.Path != want[i] {
			t.Errorf("posts[%d].Path = %q, want %q (order must follow discovery)", i, p.Path, want[i])
		}
	}
}

func TestCachePutAndList(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cache := NewCache(database)
	p := Post{Path: "content/blog/a.json"}
	p.Title = "A"
	p.Excerpt = "first"
	p.Category = "notes"

	if err := cache.Put(p); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Upsert on the same path keeps a single row and its original ID.
	first, err := cache.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	p.Title = "A updated"
	if err := cache.Put(p); err != nil {
		t.Fatalf("Put update: %v", err)
	}

	got, err := cache.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 cached post, got %d", len(got))
	}
	if got[0].Title != "A updated" {
		t.Errorf("title not updated: %q", got[0].Title)
	}
	if got[0].ID != first[0].ID {
		t.Errorf("ID changed on upsert: %q -> %q", first[0].ID, got[0].ID)
	}
}

func TestDiscoverKeepsDotsInFileNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/content/blog/" {
			// Only whole parent-link segments are discarded; ".." inside
			// a file name is a legal post.
			w.Write([]byte(`<pre>
<a href="../">../</a>
<a href="../up.json">../up.json</a>
<a href="my..post.json">my..post.json</a>
</pre>`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	d := NewDiscoverer(content.NewHTTPFetcher(srv.URL), "content/blog")
	paths, err := d.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 1 || paths[0] != "content/blog/my..post.json" {
		t.Errorf("got %v, want [content/blog/my..post.json]", paths)
	}
}

func TestLoadPostsProgressCountsAttempts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/content/blog/")
		switch name {
		case "p2.json", "p5.json":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"title": "t", "excerpt": "x", "date": "2024-01-01", "category": "notes"}`))
		}
	}))
	defer srv.Close()

	paths := []string{
		"content/blog/p1.json",
		"content/blog/p2.json",
		"content/blog/p3.json",
		"content/blog/p4.json",
		"content/blog/p5.json",
	}
	var dones []int
	posts := LoadPosts(context.Background(), content.NewHTTPFetcher(srv.URL), paths, func(done int, path string) {
		dones = append(dones, done)
	})

	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	// Progress reports every attempt, including the failed last post, so
	// the counter reaches the total.
	want := []int{1, 2, 3, 4, 5}
	if len(dones) != len(want) {
		t.Fatalf("progress fired %d times %v, want %v", len(dones), dones, want)
	}
	for i, d := range dones {
		if d != want[i] {
			t.Errorf("dones[%d] = %d, want %d", i, d, want[i])
		}
	}
}
