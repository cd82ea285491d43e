//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/nlqnav/console"
	"github.com/vcrobe/nlqnav/dom"
	"github.com/vcrobe/nlqnav/events"
	"github.com/vcrobe/nlqnav/overlay"
)

func main() {
	// 1. Bind the handlers to the live document
	ctrl := overlay.New(dom.Browser())

	// 2. Expose them as window.openNav, window.closeNav and
	//    window.toggleFilters for the onclick attributes in the markup
	events.Export(ctrl.Handlers())

	console.Log("nlqnav: handlers ready")

	// Keep the Go program running so the exported functions stay callable
	select {}
}
