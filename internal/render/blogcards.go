package render

import (
	"bytes"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/folio/internal/blog"
)

// placeholderBody is shown for posts whose content field is absent.
const placeholderBody = "Full post coming soon."

// markdown converts post bodies. Unsafe rendering is on because post
// content may already carry HTML.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// PostHref maps a post's source path to the HTML page the card links to.
func PostHref(postPath string) string {
	base := strings.TrimSuffix(path.Base(postPath), ".json")
	return "blog/" + base + ".html"
}

// BlogSection renders the blog card container with one card per post, in
// arrival order.
func BlogSection(posts []blog.Post) *Node {
	section := El("section").WithClass("blog").WithAttr("id", "blog")
	section.Append(El("h2", Text("Blog")))
	section.Append(
		El("div").WithClass("blog-search").Append(
			El("input").
				WithAttr("type", "search").
				WithAttr("id", "blog-search-input").
				WithAttr("placeholder", "Search posts..."),
			El("button", Text("Search")).
				WithAttr("type", "button").
				WithAttr("id", "blog-search-submit"),
		),
	)

	grid := El("div").WithClass("blog-grid").WithAttr("id", "blog-grid")
	for _, p := range posts {
		grid.Append(BlogCard(p))
	}
	section.Append(grid)
	return section
}

// BlogCard renders one post card. Optional image and tags omit markup.
// Title, excerpt and category are the card's searchable text.
func BlogCard(p blog.Post) *Node {
	card := El("article").
		WithClass("blog-card card").
		WithAttr("data-path", p.Path).
		WithAttr("data-category", p.Category)

	if p.Image != "" {
		card.Append(El("img").
			WithClass("blog-image").
			WithAttr("src", p.Image).
			WithAttr("alt", p.Title).
			WithAttr("loading", "lazy"))
	}

	card.Append(El("h3",
		El("a", Text(p.Title)).WithAttr("href", PostHref(p.Path)),
	).WithClass("blog-title"))

	meta := El("p").WithClass("blog-meta")
	if p.Date != "" {
		meta.Append(El("span", Text(p.Date)).WithClass("blog-date"))
	}
	if p.Category != "" {
		if len(meta.Children) > 0 {
			meta.Append(Text(" · "))
		}
		meta.Append(El("span", Text(p.Category)).WithClass("blog-category"))
	}
	if len(meta.Children) > 0 {
		card.Append(meta)
	}

	card.Append(El("p", Text(p.Excerpt)).WithClass("blog-excerpt"))

	if len(p.Tags) > 0 {
		tags := El("ul").WithClass("blog-tags")
		for _, tag := range p.Tags {
			tags.Append(El("li", Text(tag)).WithClass("blog-tag"))
		}
		card.Append(tags)
	}

	return card
}

// PostBody converts a post's content to HTML. An absent content field
// yields the placeholder paragraph.
func PostBody(p blog.Post) (*Node, error) {
	if strings.TrimSpace(p.Content) == "" {
		return El("p", Text(placeholderBody)).WithClass("blog-placeholder"), nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(p.Content), &buf); err != nil {
		return nil, fmt.Errorf("converting post %s: %w", p.Path, err)
	}
	return El("div", Raw(buf.String())).WithClass("blog-content"), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
