package render

import (
	"github.com/ziadkadry99/folio/internal/content"
)

// Projects renders the project card grid. Optional image and links omit
// their markup rather than rendering empty elements.
func Projects(projects []content.Project) *Node {
	section := El("section").WithClass("projects").WithAttr("id", "projects")
	section.Append(El("h2", Text("Projects")))

	grid := El("div").WithClass("project-grid")
	for _, p := range projects {
		grid.Append(projectCard(p))
	}
	section.Append(grid)
	return section
}

func projectCard(p content.Project) *Node {
	card := El("article").WithClass("project-card card")

	if p.Image != "" {
		card.Append(El("img").
			WithClass("project-image").
			WithAttr("src", p.Image).
			WithAttr("alt", p.Title).
			WithAttr("loading", "lazy"))
	}
	card.Append(
		El("h3", Text(p.Title)).WithClass("project-title"),
		El("p", Text(p.Description)).WithClass("project-description"),
	)
	if len(p.Technologies) > 0 {
		tags := El("ul").WithClass("project-tech")
		for _, tech := range p.Technologies {
			tags.Append(El("li", Text(tech)).WithClass("tech-tag"))
		}
		card.Append(tags)
	}

	links := El("div").WithClass("project-links")
	if p.Links.Demo != "" {
		links.Append(El("a", Text("Demo")).
			WithClass("project-link").
			WithAttr("href", p.Links.Demo).
			WithAttr("rel", "noopener").
			WithAttr("target", "_blank"))
	}
	if p.Links.Code != "" {
		links.Append(El("a", Text("Code")).
			WithClass("project-link").
			WithAttr("href", p.Links.Code).
			WithAttr("rel", "noopener").
			WithAttr("target", "_blank"))
	}
	if len(links.Children) > 0 {
		card.Append(links)
	}

	return card
}
