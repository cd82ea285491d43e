// Package dom describes the part of the browser document that the page
// handlers touch.
//
// This file has NO build tags. The live browser adapter is in browser.go
// (js/wasm only); package vdom provides an in-memory Document so handler
// logic can be tested natively.
package dom

import "strings"

// Document looks up elements the way window.document does.
// Both lookups return a nil Element when nothing matches.
type Document interface {
	// GetElementByID returns the first element whose id attribute equals id.
	GetElementByID(id string) Element

	// QuerySelector returns the first element in tree order matching the
	// CSS selector. An invalid selector matches nothing.
	QuerySelector(selector string) Element
}

// Element is a single DOM element with an inline style and a class list.
type Element interface {
	// SetStyle sets an inline style property. An empty value removes it.
	SetStyle(property, value string)

	// Style returns the inline value of property, or "" when unset.
	Style(property string) string

	// ToggleClass flips membership of class and reports whether the class
	// is present afterwards. A class that fails ValidToken is ignored and
	// reports false.
	ToggleClass(class string) bool

	// HasClass reports whether class is in the class list.
	HasClass(class string) bool

	// Classes returns the class list in document order.
	Classes() []string
}

// ValidToken reports whether class can be a class-list token: non-empty
// and free of ASCII whitespace. DOMTokenList throws for anything else.
func ValidToken(class string) bool {
	return class != "" && !strings.ContainsAny(class, " \t\n\f\r")
}
