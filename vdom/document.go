// Package vdom is an in-memory virtual document that implements
// dom.Document without a browser.
//
// Markup is parsed with golang.org/x/net/html, selectors are matched with
// cascadia, and every mutation is written straight back into the node
// attributes, so Document.HTML always reflects what a browser would
// serialize. This package has no build tags.
package vdom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/vcrobe/nlqnav/dom"
)

// Compile-time assertion to ensure Document implements dom.Document.
var _ dom.Document = (*Document)(nil)

// Document is a parsed HTML tree.
type Document struct {
	root *html.Node

	// elements keeps one wrapper per node so click handlers survive
	// repeated lookups.
	elements map[*html.Node]*Element
}

// Parse builds a Document from HTML markup. Fragments are accepted and
// placed under a synthesized <html><body>, as a browser would do.
func Parse(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("vdom: parse markup: %w", err)
	}
	return &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
	}, nil
}

// MustParse is like Parse but panics on error. Intended for test fixtures.
func MustParse(markup string) *Document {
	d, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return d
}

// GetElementByID implements dom.Document.
func (d *Document) GetElementByID(id string) dom.Element {
	if el := d.ByID(id); el != nil {
		return el
	}
	return nil
}

// QuerySelector implements dom.Document.
func (d *Document) QuerySelector(selector string) dom.Element {
	if el := d.Query(selector); el != nil {
		return el
	}
	return nil
}

// ByID is the concrete-typed form of GetElementByID.
func (d *Document) ByID(id string) *Element {
	if id == "" {
		return nil
	}
	return d.wrap(findFirst(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	}))
}

// Query is the concrete-typed form of QuerySelector.
func (d *Document) Query(selector string) *Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	return d.wrap(cascadia.Query(d.root, sel))
}

// QueryAll returns every element matching selector in tree order.
func (d *Document) QueryAll(selector string) []*Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(d.root, sel)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// HTML renders the current tree back to markup.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", fmt.Errorf("vdom: render: %w", err)
	}
	return buf.String(), nil
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{node: n}
	d.elements[n] = el
	return el
}

// findFirst walks the tree depth-first in document order.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}
