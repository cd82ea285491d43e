// Package www embeds the page markup and stylesheet served by the dev
// server. main.wasm and wasm_exec.js are build artifacts and are served
// from disk.
package www

import "embed"

//go:embed index.html style.css
var FS embed.FS
