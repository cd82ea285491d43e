package vdom

import (
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"golang.org/x/net/html"

	"github.com/vcrobe/nlqnav/dom"
)

// Compile-time assertion to ensure Element implements dom.Element.
var _ dom.Element = (*Element)(nil)

// Element wraps a single element node of a Document.
type Element struct {
	node    *html.Node
	onClick func()
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(key string) string {
	v, _ := attr(e.node, key)
	return v
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(key, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// OnClick registers the handler Click runs. A nil handler clears it.
func (e *Element) OnClick(handler func()) {
	e.onClick = handler
}

// Click dispatches a click to the registered handler, if any.
func (e *Element) Click() {
	if e.onClick != nil {
		e.onClick()
	}
}

// Classes implements dom.Element. Duplicate tokens are collapsed, as
// DOMTokenList does.
func (e *Element) Classes() []string {
	var out []string
	for _, c := range strings.Fields(e.Attr("class")) {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// HasClass implements dom.Element.
func (e *Element) HasClass(class string) bool {
	return dom.ValidToken(class) && slices.Contains(e.Classes(), class)
}

// ToggleClass implements dom.Element. Removed tokens drop out in place;
// added tokens go to the end. Invalid tokens leave the attribute alone.
func (e *Element) ToggleClass(class string) bool {
	if !dom.ValidToken(class) {
		return false
	}
	classes := e.Classes()
	present := slices.Contains(classes, class)
	if present {
		classes = slices.DeleteFunc(classes, func(c string) bool { return c == class })
	} else {
		classes = append(classes, class)
	}
	e.SetAttr("class", strings.Join(classes, " "))
	return !present
}

// Style implements dom.Element. When a property is declared twice the
// last declaration wins.
func (e *Element) Style(property string) string {
	value := ""
	for _, decl := range e.declarations() {
		if strings.EqualFold(decl.Property, property) {
			value = decl.Value
		}
	}
	return value
}

// SetStyle implements dom.Element. The property keeps its position in
// the style attribute; new properties are appended.
func (e *Element) SetStyle(property, value string) {
	var (
		out      []*css.Declaration
		replaced bool
	)
	for _, decl := range e.declarations() {
		if !strings.EqualFold(decl.Property, property) {
			out = append(out, decl)
			continue
		}
		if replaced || value == "" {
			continue
		}
		out = append(out, &css.Declaration{Property: property, Value: value})
		replaced = true
	}
	if !replaced && value != "" {
		out = append(out, &css.Declaration{Property: property, Value: value})
	}
	e.SetAttr("style", serializeDeclarations(out))
}

// declarations parses the style attribute one declaration at a time so a
// malformed or unterminated declaration costs only itself, as in a browser.
func (e *Element) declarations() []*css.Declaration {
	var out []*css.Declaration
	for _, chunk := range splitDeclarations(e.Attr("style")) {
		decls, err := parser.ParseDeclarations(chunk + ";")
		if err != nil {
			continue
		}
		for _, decl := range decls {
			decl.Property = strings.TrimSpace(decl.Property)
			decl.Value = strings.TrimSpace(decl.Value)
			if decl.Property == "" || decl.Value == "" {
				continue
			}
			out = append(out, decl)
		}
	}
	return out
}

// splitDeclarations cuts a declaration list at top-level semicolons.
// Semicolons inside strings and url() stay put because the scanner
// returns those as single tokens.
func splitDeclarations(raw string) []string {
	var (
		chunks []string
		cur    strings.Builder
	)
	flush := func() {
		if chunk := strings.TrimSpace(cur.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		cur.Reset()
	}

	s := scanner.New(raw)
	for {
		tok := s.Next()
		switch {
		case tok.Type == scanner.TokenEOF, tok.Type == scanner.TokenError:
			flush()
			return chunks
		case tok.Type == scanner.TokenComment:
		case tok.Type == scanner.TokenChar && tok.Value == ";":
			flush()
		default:
			cur.WriteString(tok.Value)
		}
	}
}

func serializeDeclarations(decls []*css.Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		if decl.Property == "" || decl.Value == "" {
			continue
		}
		s := decl.Property + ": " + decl.Value
		if decl.Important {
			s += " !important"
		}
		parts = append(parts, s+";")
	}
	return strings.Join(parts, " ")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
