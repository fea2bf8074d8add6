package render

import (
	"github.com/ziadkadry99/folio/internal/content"
)

// AllFilter is the permanent filter control that selects every item.
const AllFilter = "all"

// FilterSet is the derived-year filter over rendered publications. Filter
// application is stateless per activation; it has no search integration.
type FilterSet struct {
	Years []string // distinct derived years, sorted descending
	items []content.Publication
}

// Controls returns the ordered filter controls: "all" first, then the
// distinct years descending.
func (fs *FilterSet) Controls() []string {
	return append([]string{AllFilter}, fs.Years...)
}

// Apply returns, for each publication in render order, whether it is shown
// under the given control: every item for "all", otherwise exactly the
// items whose derived year equals the control value.
func (fs *FilterSet) Apply(control string) []bool {
	shown := make([]bool, len(fs.items))
	for i, p := range fs.items {
		shown[i] = control == AllFilter || p.Year() == control
	}
	return shown
}

// Publications renders the publication list plus its year filter bar, and
// returns the FilterSet driving it. Every item carries data-category;
// data-year is only present when a year was derived.
func Publications(pubs []content.Publication) (*Node, *FilterSet) {
	fs := &FilterSet{items: pubs}
	seen := make(map[string]bool)
	for _, p := range pubs {
		if y := p.Year(); y != "" && !seen[y] {
			seen[y] = true
			fs.Years = append(fs.Years, y)
		}
	}
	sortYearsDesc(fs.Years)

	section := El("section").WithClass("publications").WithAttr("id", "publications")
	section.Append(El("h2", Text("Publications")))

	bar := El("div").WithClass("publication-filters")
	for _, control := range fs.Controls() {
		btn := El("button", Text(filterLabel(control))).
			WithClass("filter-button").
			WithAttr("type", "button").
			WithAttr("data-filter", control)
		if control == AllFilter {
			btn.WithClass("active")
		}
		bar.Append(btn)
	}
	section.Append(bar)

	list := El("div").WithClass("publication-list")
	for _, p := range pubs {
		list.Append(publicationItem(p))
	}
	section.Append(list)

	return section, fs
}

func filterLabel(control string) string {
	if control == AllFilter {
		return "All"
	}
	return control
}

func publicationItem(p content.Publication) *Node {
	item := El("article").
		WithClass("publication-item card").
		WithAttr("data-category", p.Category)
	if y := p.Year(); y != "" {
		item.WithAttr("data-year", y)
	}

	item.Append(El("h3", Text(p.Title)).WithClass("publication-title"))
	if p.Authors != "" {
		item.Append(El("p", Text(p.Authors)).WithClass("publication-authors"))
	}
	meta := El("p").WithClass("publication-meta")
	if p.Venue != "" {
		meta.Append(El("span", Text(p.Venue)).WithClass("publication-venue"))
	}
	if p.Date != "" {
		if len(meta.Children) > 0 {
			meta.Append(Text(" · "))
		}
		meta.Append(El("span", Text(p.Date)).WithClass("publication-date"))
	}
	if len(meta.Children) > 0 {
		item.Append(meta)
	}

	if len(p.Links) > 0 {
		links := El("div").WithClass("publication-links")
		for _, kind := range sortedKeys(p.Links) {
			links.Append(El("a", Text(kind)).
				WithClass("publication-link").
				WithAttr("href", p.Links[kind]).
				WithAttr("rel", "noopener").
				WithAttr("target", "_blank"))
		}
		item.Append(links)
	}

	return item
}
