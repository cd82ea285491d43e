// Package devserver serves the page, its stylesheet and the compiled WASM
// artifacts for local development.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vcrobe/nlqnav/internal/config"
	"github.com/vcrobe/nlqnav/www"
)

// Content types the browser insists on for the WASM loader.
const (
	contentTypeWasm = "application/wasm"
	contentTypeJS   = "text/javascript; charset=utf-8"
)

// Server is the local page server.
type Server struct {
	cfg    config.Config
	log    *zap.Logger
	assets fs.FS
	router chi.Router
}

// New creates a Server. Page assets come from cfg.StaticDir when set,
// otherwise from the copy embedded in package www.
func New(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	var assets fs.FS = www.FS
	if cfg.StaticDir != "" {
		assets = os.DirFS(cfg.StaticDir)
	}

	s := &Server{
		cfg:    cfg,
		log:    log,
		assets: assets,
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/main.wasm", s.serveArtifact(s.cfg.WasmPath, contentTypeWasm))
	r.Get("/wasm_exec.js", s.serveArtifact(s.cfg.WasmExecPath, contentTypeJS))

	r.Handle("/*", http.FileServerFS(s.assets))

	return r
}

// serveArtifact serves a build output from disk, re-reading it on every
// request so a rebuild shows up on reload.
func (s *Server) serveArtifact(path, contentType string) http.HandlerFunc {
	name := filepath.Base(path)
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.log.Warn("artifact missing", zap.String("path", path))
				http.Error(w, fmt.Sprintf("%s not found at %s: run `make wasm` first", name, path), http.StatusNotFound)
				return
			}
			s.log.Error("open artifact", zap.String("path", path), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			s.log.Error("stat artifact", zap.String("path", path), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		http.ServeContent(w, r, name, info.ModTime(), f)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("serving page", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// requestLogger logs one line per request through zap.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
