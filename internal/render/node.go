// Package render maps parsed content documents to display-independent node
// trees. Binding nodes to actual HTML happens in the WriteHTML adapter, so
// the renderers stay testable without a display environment.
package render

import (
	"html"
	"io"
	"sort"
	"strings"
)

// Attr is one key/value attribute on an element node.
type Attr struct {
	Key string
	Val string
}

// Node describes one element or text node. A node with an empty Tag is a
// text node; Raw marks pre-rendered trusted HTML (goldmark output,
// highlight markup) that must not be escaped again.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Raw      bool
	Children []*Node
}

// El creates an element node with the given children.
func El(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text creates an escaped text node.
func Text(s string) *Node { return &Node{Text: s} }

// Raw creates a node carrying pre-rendered HTML.
func Raw(s string) *Node { return &Node{Text: s, Raw: true} }

// WithAttr returns the node with one attribute appended.
func (n *Node) WithAttr(key, val string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

// WithClass is shorthand for a class attribute.
func (n *Node) WithClass(class string) *Node { return n.WithAttr("class", class) }

// Append adds children and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Attr returns the value of the named attribute and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// voidTags are elements written without a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// WriteHTML renders a node tree as HTML, escaping text and attribute
// values. This is the only place node descriptions touch markup.
func WriteHTML(w io.Writer, nodes ...*Node) error {
	for _, n := range nodes {
		if err := writeNode(w, n); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	if n.Tag == "" {
		text := n.Text
		if !n.Raw {
			text = html.EscapeString(text)
		}
		_, err := io.WriteString(w, text)
		return err
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if voidTags[n.Tag] {
		return nil
	}
	for _, c := range n.Children {
		if err := writeNode(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// HTML renders nodes to a string.
func HTML(nodes ...*Node) string {
	var b strings.Builder
	_ = WriteHTML(&b, nodes...)
	return b.String()
}

// FindAll walks the tree and returns every node the predicate accepts.
func FindAll(nodes []*Node, pred func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if pred(n) {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}

// sortYearsDesc orders 4-digit year strings descending. All values have
// equal length, so lexicographic order coincides with numeric order; the
// comparison is still written numeric-first with a lexicographic tiebreak.
func sortYearsDesc(years []string) {
	sort.Slice(years, func(i, j int) bool {
		if len(years[i]) != len(years[j]) {
			return len(years[i]) > len(years[j])
		}
		return years[i] > years[j]
	})
}
