// Package server exposes a filesystem tree over HTTP for read-only
// browsing. Files are served as raw bytes and directories as JSON
// listings, with health, version, and metrics endpoints alongside.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	fsutil "github.com/jmgilman/go/fsutil"
	"github.com/jmgilman/go/fsutil/core"
	"github.com/jmgilman/go/fsutil/internal/logging"
)

// Config carries the server settings.
type Config struct {
	Addr         string
	Version      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves a core.FS over HTTP. The filesystem handed to New is the
// visibility boundary: callers chroot before constructing the server.
type Server struct {
	config     Config
	fsys       core.FS
	logger     *logging.Logger
	router     *mux.Router
	httpServer *http.Server
	metrics    *Metrics
}

// entry is one element of a directory listing response.
type entry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a server rooted at fsys.
func New(config Config, fsys core.FS, logger *logging.Logger) *Server {
	s := &Server{
		config:  config,
		fsys:    fsys,
		logger:  logger,
		metrics: NewMetrics(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/version", s.handleVersion).Methods("GET")
	s.router.HandleFunc("/metrics", s.handleMetrics).Methods("GET")
	s.router.PathPrefix("/files/").HandlerFunc(s.handleFiles).Methods("GET")

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.metricsMiddleware)
}

// Handler returns the configured router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	s.logger.Info("serving on %s", s.config.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := s.fsys.ReadDir("."); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		health["status"] = "unhealthy"
		health["error"] = "root not readable"
	}

	s.writeJSON(w, health)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.config.Version})
}

// handleFiles serves a file's bytes or a directory's JSON listing.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/files/"):]
	if name == "" {
		name = "."
	}

	isDir, err := fsutil.IsDir(s.fsys, name)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "stat failed")
		return
	}
	if isDir {
		s.serveDir(w, name)
		return
	}
	s.serveFile(w, name)
}

func (s *Server) serveDir(w http.ResponseWriter, name string) {
	entries, err := s.fsys.ReadDir(name)
	if err != nil {
		if core.IsNotFound(err) {
			s.writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error("list %s: %v", name, err)
		s.writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}

	listing := make([]entry, 0, len(entries))
	for _, e := range entries {
		item := entry{Name: e.Name(), IsDir: e.IsDir()}
		if info, err := e.Info(); err == nil && !e.IsDir() {
			item.Size = info.Size()
		}
		listing = append(listing, item)
	}
	s.writeJSON(w, listing)
}

func (s *Server) serveFile(w http.ResponseWriter, name string) {
	f, err := s.fsys.Open(name)
	if err != nil {
		if core.IsNotFound(err) {
			s.writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error("open %s: %v", name, err)
		s.writeError(w, http.StatusInternalServerError, "open failed")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if info, err := f.Stat(); err == nil {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	}
	if _, err := io.Copy(w, f); err != nil {
		s.logger.Error("send %s: %v", name, err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		s.logger.Error("encode error response: %v", err)
	}
}

// loggingMiddleware logs one line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriterWrapper{ResponseWriter: w}

		next.ServeHTTP(wrapped, r)

		s.logger.Info("%s %s %d %v %s", r.Method, r.RequestURI, wrapped.statusCode, time.Since(start), r.RemoteAddr)
	})
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriterWrapper{ResponseWriter: w}

		next.ServeHTTP(wrapped, r)

		s.metrics.RecordRequest(r.URL.Path, time.Since(start), wrapped.statusCode >= 400)
	})
}

// responseWriterWrapper captures the status code written by a handler.
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriterWrapper) Write(data []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.ResponseWriter.Write(data)
}
