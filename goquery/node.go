// Package goquery implements the tenders markup tree on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tenders"
)

// Compile-time interface verification.
var (
	_ tenders.Parser = (*Parser)(nil)
	_ tenders.Node   = (*Node)(nil)
)

// Parser parses HTML documents with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html and returns the document root.
func (p *Parser) Parse(html string) (tenders.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tenders.Errorf(tenders.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Node wraps a goquery selection holding exactly one element, or the
// document itself.
type Node struct {
	sel *goquery.Selection
}

// FindUnique returns the single descendant matching sel.
func (n *Node) FindUnique(sel tenders.Selector) (tenders.Node, error) {
	found := n.sel.Find(cssSelector(sel))
	switch count := found.Length(); count {
	case 1:
		return &Node{sel: found}, nil
	case 0:
		return nil, tenders.Errorf(tenders.ESTRUCTURE, "no %s element found", sel)
	default:
		return nil, tenders.Errorf(tenders.ESTRUCTURE, "expected one %s element, found %d", sel, count)
	}
}

// FindAll returns every descendant matching sel in document order.
func (n *Node) FindAll(sel tenders.Selector) []tenders.Node {
	found := n.sel.Find(cssSelector(sel))
	nodes := make([]tenders.Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// cssSelector converts a structural selector to CSS. A missing tag matches
// any element carrying the class.
func cssSelector(sel tenders.Selector) string {
	tag := sel.Tag
	if tag == "" {
		tag = "*"
	}
	if sel.Class == "" {
		return tag
	}
	return tag + "." + sel.Class
}
