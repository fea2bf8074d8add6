package search

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ziadkadry99/folio/internal/blog"
)

func testPosts() []blog.Post {
	mk := func(path, title, excerpt, category string) blog.Post {
		p := blog.Post{Path: path}
		p.Title = title
		p.Excerpt = excerpt
		p.Category = category
		return p
	}
	return []blog.Post{
		mk("content/blog/ml.json", "Machine Learning Basics", "An intro to ML.", "ml"),
		mk("content/blog/go.json", "Writing Go Services", "Servers in Go.", "engineering"),
		mk("content/blog/life.json", "A Year Abroad", "Travel notes.", "personal"),
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	e := NewEngine(testPosts())
	res := e.Search("")
	if res.VisibleCount != 3 {
		t.Errorf("empty query: visible = %d, want 3", res.VisibleCount)
	}
	if res.Message != "" {
		t.Errorf("empty query must not produce a message, got %q", res.Message)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	e := NewEngine(testPosts())

	res := e.Search("ml")
	if res.VisibleCount != 1 {
		t.Fatalf("query 'ml': visible = %d, want 1", res.VisibleCount)
	}
	cards := e.Cards()
	if !cards[0].Visible || cards[1].Visible {
		t.Error("'ml' should match the ML card only")
	}

	// Substring of the title, different case.
	res = e.Search("MACHINE")
	if res.VisibleCount != 1 {
		t.Errorf("query 'MACHINE': visible = %d, want 1", res.VisibleCount)
	}

	// Category text is searchable too.
	res = e.Search("engineering")
	if res.VisibleCount != 1 {
		t.Errorf("query 'engineering': visible = %d, want 1", res.VisibleCount)
	}
}

func TestSearchNoResultsMessage(t *testing.T) {
	e := NewEngine(testPosts())
	res := e.Search("xyz123")
	if res.VisibleCount != 0 {
		t.Fatalf("visible = %d, want 0", res.VisibleCount)
	}
	if !strings.Contains(res.Message, "xyz123") {
		t.Errorf("message must echo the literal query, got %q", res.Message)
	}
}

func TestSearchRoundTripIdempotent(t *testing.T) {
	e := NewEngine(testPosts())

	e.Search("go")
	res := e.Search("")
	if res.VisibleCount != 3 {
		t.Errorf("round trip: visible = %d, want 3", res.VisibleCount)
	}
	for i, c := range e.Cards() {
		if !c.Visible {
			t.Errorf("card %d not restored to visible", i)
		}
		if strings.Contains(c.TitleHTML, "<mark") || strings.Contains(c.ExcerptHTML, "<mark") {
			t.Errorf("card %d retains highlight markup after clearing", i)
		}
	}
}

func TestSearchHighlightRecomputedNotLayered(t *testing.T) {
	e := NewEngine(testPosts())

	e.Search("go")
	e.Search("go") // repeat must not nest marks
	for _, c := range e.Cards() {
		if strings.Contains(c.TitleHTML, "<mark class=\"search-highlight\"><mark") {
			t.Errorf("highlight layered: %s", c.TitleHTML)
		}
	}

	res := e.Search("go")
	if res.VisibleCount != 1 {
		t.Fatalf("visible = %d, want 1", res.VisibleCount)
	}
	card := e.Cards()[1]
	if want := `Writing <mark class="search-highlight">Go</mark> Services`; card.TitleHTML != want {
		t.Errorf("TitleHTML = %q, want %q", card.TitleHTML, want)
	}
}

func TestSearchQueryIsLiteral(t *testing.T) {
	posts := testPosts()
	p := blog.Post{Path: "content/blog/regex.json"}
	p.Title = "Notes on a.b matching"
	p.Excerpt = "dots are literal"
	p.Category = "ml"
	posts = append(posts, p)
	e := NewEngine(posts)

	// "a.b" must match only the literal "a.b", not "a<any>b".
	res := e.Search("a.b")
	if res.VisibleCount != 1 {
		t.Errorf("query 'a.b': visible = %d, want 1", res.VisibleCount)
	}
	if e.Cards()[3].TitleHTML != `Notes on <mark class="search-highlight">a.b</mark> matching` {
		t.Errorf("unexpected highlight: %q", e.Cards()[3].TitleHTML)
	}
}

func TestSearchTrimsAndNormalizesQuery(t *testing.T) {
	e := NewEngine(testPosts())
	res := e.Search("  Travel  ")
	if res.Query != "travel" {
		t.Errorf("normalized query = %q, want %q", res.Query, "travel")
	}
	if res.VisibleCount != 1 {
		t.Errorf("visible = %d, want 1", res.VisibleCount)
	}
}

func TestTriggerDebounceTrailingEdit(t *testing.T) {
	e := NewEngine(testPosts())
	var fired atomic.Int32
	var last atomic.Value
	tr := NewTrigger(e, func(r Result) {
		fired.Add(1)
		last.Store(r.Query)
	})
	tr.delay = 20 * time.Millisecond

	tr.Edit("m")
	tr.Edit("ma")
	tr.Edit("mac")

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("fired %d searches, want 1 (trailing edit only)", got)
	}
	if q := last.Load(); q != "mac" {
		t.Errorf("fired query = %v, want mac", q)
	}
}

func TestTriggerSubmitImmediate(t *testing.T) {
	e := NewEngine(testPosts())
	var fired atomic.Int32
	tr := NewTrigger(e, func(Result) { fired.Add(1) })
	tr.delay = time.Hour // pending edit would never fire on its own

	tr.Edit("pending")
	res := tr.Submit("go")
	if res.VisibleCount != 1 {
		t.Errorf("submit: visible = %d, want 1", res.VisibleCount)
	}
	if e.Query() != "go" {
		t.Errorf("engine query = %q, want go", e.Query())
	}

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("fired %d searches, want 1 (submit cancels pending edit)", got)
	}
}

func TestTriggerEscapeClears(t *testing.T) {
	e := NewEngine(testPosts())
	tr := NewTrigger(e, nil)

	tr.Submit("go")
	res := tr.Escape()
	if res.VisibleCount != 3 || res.Query != "" {
		t.Errorf("escape: query %q visible %d, want empty query with 3 visible", res.Query, res.VisibleCount)
	}
}

func TestReloadKeepsQuery(t *testing.T) {
	e := NewEngine(testPosts())
	e.Search("go")

	replacement := testPosts()[:2] // drops the travel post
	e.Reload(replacement)

	if e.Query() != "go" {
		t.Errorf("query after reload = %q, want go", e.Query())
	}
	cards := e.Cards()
	if len(cards) != 2 {
		t.Fatalf("cards after reload = %d, want 2", len(cards))
	}
	if cards[0].Visible || !cards[1].Visible {
		t.Error("query must be re-applied to the new card set")
	}
}

func TestSearchResultCarriesOwnCardStates(t *testing.T) {
	e := NewEngine(testPosts())

	res := e.Search("go")
	if len(res.Cards) != 3 {
		t.Fatalf("result cards = %d, want 3", len(res.Cards))
	}
	if res.Cards[0].Visible || !res.Cards[1].Visible {
		t.Error("result cards must reflect the searched query")
	}
	if !strings.Contains(res.Cards[1].TitleHTML, "<mark") {
		t.Errorf("result cards missing highlight: %q", res.Cards[1].TitleHTML)
	}

	// A later search must not mutate the earlier result's snapshot.
	e.Search("")
	if res.Cards[0].Visible {
		t.Error("snapshot mutated by a later search")
	}
}

func TestSearchConcurrentResultsSelfConsistent(t *testing.T) {
	e := NewEngine(testPosts())
	queries := []string{"go", "travel", "", "ml", "xyz"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		q := queries[i%len(queries)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := e.Search(q)
			visible := 0
			for _, c := range res.Cards {
				if c.Visible {
					visible++
				}
			}
			if visible != res.VisibleCount {
				t.Errorf("query %q: %d visible cards but count %d", q, visible, res.VisibleCount)
			}
			if res.VisibleCount == 0 && res.Query != "" && !strings.Contains(res.Message, res.Query) {
				t.Errorf("query %q: message %q does not match", q, res.Message)
			}
		}()
	}
	wg.Wait()
}
