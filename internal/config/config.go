// Package config loads the dev server settings.
//
// Precedence, lowest first: DefaultConfig, the optional YAML file,
// NLQNAV_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. NLQNAV_ADDR.
const EnvPrefix = "NLQNAV_"

// Config holds the dev server settings.
type Config struct {
	Addr string `koanf:"addr"`

	// StaticDir serves page assets from disk instead of the embedded copy.
	StaticDir string `koanf:"static_dir"`

	WasmPath     string `koanf:"wasm_path"`
	WasmExecPath string `koanf:"wasm_exec_path"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Verbose         bool          `koanf:"verbose"`
}

// DefaultConfig matches the layout produced by `make wasm`.
func DefaultConfig() *Config {
	return &Config{
		Addr:            ":8080",
		WasmPath:        "build/main.wasm",
		WasmExecPath:    "build/wasm_exec.js",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads path if it exists, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr is required")
	}
	if c.WasmPath == "" {
		return errors.New("wasm_path is required")
	}
	if c.WasmExecPath == "" {
		return errors.New("wasm_exec_path is required")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.StaticDir != "" {
		info, err := os.Stat(c.StaticDir)
		if err != nil {
			return fmt.Errorf("static_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("static_dir %s is not a directory", c.StaticDir)
		}
	}
	return nil
}
