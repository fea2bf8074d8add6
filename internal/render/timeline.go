package render

import (
	"strconv"

	"github.com/ziadkadry99/folio/internal/content"
)

// Timeline renders an education or experience timeline. Every entry is
// seeded collapsed (data-expanded="false"); the accordion keeps at most
// one entry expanded at a time.
func Timeline(id string, heading string, entries []content.TimelineEntry) *Node {
	section := El("section").WithClass("timeline").WithAttr("id", id)
	section.Append(El("h2", Text(heading)))

	list := El("div").WithClass("timeline-entries")
	for i, e := range entries {
		list.Append(timelineEntry(i, e))
	}
	section.Append(list)
	return section
}

func timelineEntry(index int, e content.TimelineEntry) *Node {
	entry := El("article").
		WithClass("timeline-entry").
		WithAttr("data-index", strconv.Itoa(index)).
		WithAttr("data-expanded", "false")

	header := El("button").WithClass("timeline-header").WithAttr("type", "button")
	header.Append(El("h3", Text(e.Title)).WithClass("timeline-title"))
	if e.Subtitle != "" {
		header.Append(El("p", Text(e.Subtitle)).WithClass("timeline-subtitle"))
	}
	if e.Date != "" {
		header.Append(El("span", Text(e.Date)).WithClass("timeline-date"))
	}
	entry.Append(header)

	body := El("div").WithClass("timeline-body")
	for _, para := range e.Overview {
		body.Append(El("p", Text(para)).WithClass("timeline-overview"))
	}
	if len(e.Details) > 0 {
		details := El("ul").WithClass("timeline-details")
		for _, d := range e.Details {
			details.Append(El("li", Text(d)))
		}
		body.Append(details)
	}
	entry.Append(body)

	return entry
}
