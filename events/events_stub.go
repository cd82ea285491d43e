//go:build !wasm
// +build !wasm

// Package events exposes Go handlers to page markup as global JS functions.
package events

// Stub file for non-WASM builds. The actual implementation is in events.go
// with js/wasm build tags.

// Export is a no-op in non-WASM builds; the returned release does nothing.
func Export(handlers map[string]func()) (release func()) {
	return func() {}
}
