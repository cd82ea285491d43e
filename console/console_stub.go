//go:build !wasm
// +build !wasm

// Package console forwards log lines to the browser console.
package console

// Stub file for non-WASM builds so handler code compiles and tests run natively.
// The actual implementation is in console.go with js/wasm build tags.

// Log is a no-op in non-WASM builds.
func Log(args ...any) {}

// Warn is a no-op in non-WASM builds.
func Warn(args ...any) {}

// Error is a no-op in non-WASM builds.
func Error(args ...any) {}
