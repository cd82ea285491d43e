//go:build js || wasm
// +build js wasm

// Package events exposes Go handlers to page markup as global JS functions.
package events

import (
	"syscall/js"
)

// Export sets each handler as window[name] so markup such as
// onclick="openNav()" reaches it. The returned release removes the
// globals and frees the js.Func values; pages that live for the whole
// session never need to call it.
func Export(handlers map[string]func()) (release func()) {
	global := js.Global()
	funcs := make(map[string]js.Func, len(handlers))

	for name, handler := range handlers {
		fn := js.FuncOf(func(this js.Value, args []js.Value) any {
			handler()
			return nil
		})
		global.Set(name, fn)
		funcs[name] = fn
	}

	return func() {
		for name, fn := range funcs {
			global.Delete(name)
			fn.Release()
		}
	}
}
