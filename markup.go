package tenders

// Selector identifies an element by structural role: a tag name and an
// optional class. An empty Class matches any element with the tag.
type Selector struct {
	Tag   string
	Class string
}

// String returns the selector in CSS notation (e.g., "div.item-left").
func (s Selector) String() string {
	if s.Class == "" {
		return s.Tag
	}
	return s.Tag + "." + s.Class
}

// Node is a read-only element of a parsed markup tree.
type Node interface {
	// FindUnique returns the single descendant matching sel.
	// Returns ESTRUCTURE if there are zero or several matches.
	FindUnique(sel Selector) (Node, error)

	// FindAll returns every descendant matching sel in document order.
	// The result is empty, not an error, when nothing matches.
	FindAll(sel Selector) []Node

	// Text returns the combined text content of the node and its descendants.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}

// Parser parses raw HTML into a markup tree.
type Parser interface {
	Parse(html string) (Node, error)
}
