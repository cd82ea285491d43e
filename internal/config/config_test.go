package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "build/main.wasm", cfg.WasmPath)
	assert.Equal(t, "build/wasm_exec.js", cfg.WasmExecPath)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlqnav.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: "127.0.0.1:9000"
wasm_path: out/app.wasm
shutdown_timeout: 2s
verbose: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "out/app.wasm", cfg.WasmPath)
	assert.Equal(t, "build/wasm_exec.js", cfg.WasmExecPath, "unset keys keep defaults")
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.Verbose)
}

// TestLoad_EnvOverridesFile verifies NLQNAV_* variables win over the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlqnav.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\n"), 0o644))
	t.Setenv("NLQNAV_ADDR", ":7000")
	t.Setenv("NLQNAV_WASM_EXEC_PATH", "/opt/go/lib/wasm/wasm_exec.js")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "/opt/go/lib/wasm/wasm_exec.js", cfg.WasmExecPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlqnav.yml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "reading config")
}

func TestValidate(t *testing.T) {
	notDir := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(notDir, []byte("x"), 0o644))

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty addr", func(c *Config) { c.Addr = " " }, "addr is required"},
		{"empty wasm path", func(c *Config) { c.WasmPath = "" }, "wasm_path is required"},
		{"empty wasm_exec path", func(c *Config) { c.WasmExecPath = "" }, "wasm_exec_path is required"},
		{"zero timeout", func(c *Config) { c.ShutdownTimeout = 0 }, "shutdown_timeout must be positive"},
		{"missing static dir", func(c *Config) { c.StaticDir = filepath.Join(notDir, "nope") }, "static_dir"},
		{"static dir is a file", func(c *Config) { c.StaticDir = notDir }, "is not a directory"},
		{"existing static dir", func(c *Config) { c.StaticDir = t.TempDir() }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
