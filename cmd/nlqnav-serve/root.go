package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcrobe/nlqnav/internal/config"
	"github.com/vcrobe/nlqnav/internal/devserver"
	"github.com/vcrobe/nlqnav/internal/logging"
)

type flags struct {
	configFile      string
	addr            string
	wasmPath        string
	wasmExecPath    string
	staticDir       string
	shutdownTimeout time.Duration
	verbose         bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "nlqnav-serve",
		Short: "Serve the search page and its WASM handlers",
		Long: `nlqnav-serve serves www/index.html, the stylesheet, and the
compiled main.wasm plus wasm_exec.js so the overlay and filter handlers
can be exercised in a browser.

Build the WASM artifacts first with: make wasm`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("resolved config",
				zap.String("addr", cfg.Addr),
				zap.String("wasm_path", cfg.WasmPath),
				zap.String("wasm_exec_path", cfg.WasmExecPath),
				zap.String("static_dir", cfg.StaticDir))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return devserver.New(*cfg, logger).ListenAndServe(ctx)
		},
	}

	f.register(cmd)

	return cmd
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configFile, "config", "nlqnav.yml", "config file path (optional)")
	fs.StringVar(&f.addr, "addr", "", "listen address (default :8080)")
	fs.StringVar(&f.wasmPath, "wasm", "", "path to the compiled main.wasm")
	fs.StringVar(&f.wasmExecPath, "wasm-exec", "", "path to wasm_exec.js")
	fs.StringVar(&f.staticDir, "static-dir", "", "serve page assets from this directory instead of the embedded copy")
	fs.DurationVar(&f.shutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout (default 5s)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
}

// resolveConfig loads file and env settings, then applies the flags the
// user actually set.
func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("addr") {
		cfg.Addr = f.addr
	}
	if changed("wasm") {
		cfg.WasmPath = f.wasmPath
	}
	if changed("wasm-exec") {
		cfg.WasmExecPath = f.wasmExecPath
	}
	if changed("static-dir") {
		cfg.StaticDir = f.staticDir
	}
	if changed("shutdown-timeout") {
		cfg.ShutdownTimeout = f.shutdownTimeout
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
