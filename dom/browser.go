//go:build js || wasm
// +build js wasm

package dom

import (
	"syscall/js"

	jsdom "honnef.co/go/js/dom/v2"
)

// Compile-time assertions that the browser adapters satisfy the contract.
var (
	_ Document = (*browserDocument)(nil)
	_ Element  = (*browserElement)(nil)
)

type browserDocument struct {
	doc jsdom.Document
}

// Browser returns the live window.document.
func Browser() Document {
	return &browserDocument{doc: jsdom.GetWindow().Document()}
}

func (d *browserDocument) GetElementByID(id string) Element {
	return wrapElement(d.doc.GetElementByID(id))
}

func (d *browserDocument) QuerySelector(selector string) Element {
	return querySafely(func() jsdom.Element {
		return d.doc.QuerySelector(selector)
	})
}

// querySafely turns the SyntaxError querySelector throws for malformed
// selectors into a missing element. Other panics propagate.
func querySafely(query func() jsdom.Element) (found Element) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(js.Error); !ok {
				panic(rec)
			}
			found = nil
		}
	}()
	return wrapElement(query())
}

// wrapElement keeps a missing element as an untyped nil.
func wrapElement(el jsdom.Element) Element {
	if el == nil {
		return nil
	}
	return &browserElement{el: el}
}

type browserElement struct {
	el jsdom.Element
}

func (e *browserElement) SetStyle(property, value string) {
	if value == "" {
		e.styleValue().Call("removeProperty", property)
		return
	}
	if html, ok := e.el.(jsdom.HTMLElement); ok {
		html.Style().SetProperty(property, value, "")
		return
	}
	e.styleValue().Call("setProperty", property, value)
}

func (e *browserElement) Style(property string) string {
	if html, ok := e.el.(jsdom.HTMLElement); ok {
		return html.Style().GetPropertyValue(property)
	}
	return e.styleValue().Call("getPropertyValue", property).String()
}

// styleValue reaches the CSSStyleDeclaration of elements that are not
// HTMLElements (SVG, MathML).
func (e *browserElement) styleValue() js.Value {
	return e.el.Underlying().Get("style")
}

func (e *browserElement) ToggleClass(class string) bool {
	if !ValidToken(class) {
		return false
	}
	list := e.el.Class()
	list.Toggle(class)
	return list.Contains(class)
}

func (e *browserElement) HasClass(class string) bool {
	return ValidToken(class) && e.el.Class().Contains(class)
}

func (e *browserElement) Classes() []string {
	return e.el.Class().Slice()
}
