package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*cobra.Command, flags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	var f flags
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

// TestResolveConfig_FlagsOverrideFile verifies explicitly set flags win
// and unset flags leave file values alone.
func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlqnav.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
wasm_path: out/app.wasm
`), 0o644))

	cmd, f := parse(t, "--config", path, "--addr", "127.0.0.1:7777", "--shutdown-timeout", "250ms", "-v")

	cfg, err := resolveConfig(cmd, f)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7777", cfg.Addr)
	assert.Equal(t, "out/app.wasm", cfg.WasmPath)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_Defaults(t *testing.T) {
	cmd, f := parse(t, "--config", filepath.Join(t.TempDir(), "absent.yml"))

	cfg, err := resolveConfig(cmd, f)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "build/main.wasm", cfg.WasmPath)
	assert.False(t, cfg.Verbose)
}

func TestResolveConfig_Invalid(t *testing.T) {
	cmd, f := parse(t, "--config", filepath.Join(t.TempDir(), "absent.yml"), "--static-dir", filepath.Join(t.TempDir(), "missing"))

	_, err := resolveConfig(cmd, f)
	assert.ErrorContains(t, err, "invalid config")
}

func TestRootCmd_RejectsUnknownFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--no-such-flag"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}
