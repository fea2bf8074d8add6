// Package widgets holds the session-scoped UI state machines: the
// timeline accordion and the image lightbox.
package widgets

// Collapsed marks an accordion with no expanded entry.
const Collapsed = -1

// Accordion tracks which entry of one timeline is expanded. At most one
// entry is expanded at a time; all collapsed is a valid state and the
// initial one.
type Accordion struct {
	count    int
	expanded int
}

// NewAccordion creates an accordion over count entries, all collapsed.
func NewAccordion(count int) *Accordion {
	return &Accordion{count: count, expanded: Collapsed}
}

// Toggle selects entry i. Selecting a collapsed entry collapses every
// other entry and expands i; selecting the expanded entry collapses it.
// Out-of-range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.count {
		return
	}
	if a.expanded == i {
		a.expanded = Collapsed
		return
	}
	a.expanded = i
}

// Expanded returns the index of the expanded entry, or Collapsed.
func (a *Accordion) Expanded() int { return a.expanded }

// IsExpanded reports whether entry i is the expanded one.
func (a *Accordion) IsExpanded(i int) bool { return a.expanded == i }
