// Package server serves the package report as a sortable HTML table.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smithellis/upgrade-insight/pkg/report"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Config holds the server settings, built once at startup from CLI flags.
type Config struct {
	Addr             string // listen address, e.g. ":8080"
	ShowDescriptions bool   // include the description column in the table
}

// Server renders the dependency report over HTTP.
type Server struct {
	cfg      Config
	analyzer *report.Analyzer
	logger   *log.Logger
	tmpl     *template.Template
}

// New creates a Server with the index template parsed from the embedded
// resource.
func New(cfg Config, analyzer *report.Analyzer, logger *log.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, analyzer: analyzer, logger: logger, tmpl: tmpl}, nil
}

// Handler returns the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("listening", "addr", s.cfg.Addr)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		// Startup failure (e.g. address already in use): surface it
		// instead of waiting on a cancellation that may never come.
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// indexData is the template payload for the report page.
type indexData struct {
	Packages         []report.Report
	ShowDescriptions bool
}

// handleIndex runs the analysis and renders the table. A manifest failure
// is the only hard failure; per-dependency problems already degraded to
// neutral records inside the analyzer.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	reports, err := s.analyzer.Analyze(r.Context())
	if err != nil {
		s.logger.Error("analysis failed", "err", err)
		http.Error(w, "failed to read manifest", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, indexData{Packages: reports, ShowDescriptions: s.cfg.ShowDescriptions}); err != nil {
		s.logger.Error("render failed", "err", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// requestLogger logs each request through the application logger rather
// than chi's stdlib-log middleware.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}
