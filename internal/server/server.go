// Package server exposes the résumé pipeline over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/render"
	"github.com/spigell/hh-resume/internal/resume"
)

// MaxBodyBytes limits request bodies.
const MaxBodyBytes = 1 << 20

//go:embed ui/index.html
var ui embed.FS

// Config holds listener settings.
type Config struct {
	Listen       string        `mapstructure:"listen"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
}

// DefaultConfig returns the listener defaults.
func DefaultConfig() Config {
	return Config{
		Listen:       "127.0.0.1:8000",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
	}
}

// Printer converts rendered HTML into PDF.
type Printer interface {
	Print(ctx context.Context, html, baseURL string) ([]byte, error)
}

// Server serves the UI and the JSON API.
type Server struct {
	parser   *resume.Parser
	renderer *render.Renderer
	printer  Printer
	logger   *zap.Logger
	router   chi.Router
}

// New wires the handlers. A nil printer makes PDF generation report the
// renderer as unavailable.
func New(parser *resume.Parser, renderer *render.Renderer, printer Printer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		parser:   parser,
		renderer: renderer,
		printer:  printer,
		logger:   logger,
	}
	s.router = s.routes()

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleTemplates)
		r.Post("/parse", s.handleParse)
		r.Post("/preview", s.handlePreview)
		r.Post("/generate", s.handleGenerate)
		r.Post("/cover-letter", s.handleCoverLetter)
	})

	if dir := s.renderer.Dir(); dir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
	}

	return r
}

// logRequests logs one entry per request once the response is written.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request served",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// ListenAndServe serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg Config) error {
	defaults := DefaultConfig()
	if cfg.Listen == "" {
		cfg.Listen = defaults.Listen
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaults.ReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", cfg.Listen, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.String("addr", cfg.Listen))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
