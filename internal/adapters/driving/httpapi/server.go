// Package httpapi exposes the search pipeline and user accounts over
// HTTP. It is deliberately thin: request decoding, response envelopes,
// status codes, CORS. All search behaviour lives in the core services.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/oakway-labs/eventscout/internal/core/domain"
	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
	"github.com/oakway-labs/eventscout/internal/core/ports/driving"
	"github.com/oakway-labs/eventscout/internal/logger"
)

// Options configures the optional parts of the server.
type Options struct {
	// Users enables the account routes when non-nil.
	Users driven.UserStore

	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler

	// StaticDir is served with an index.html fallback when non-empty.
	StaticDir string

	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string
}

// Server is the HTTP surface over the activity service.
type Server struct {
	service driving.ActivityService
	users   driven.UserStore
	opts    Options
	mux     *http.ServeMux
}

// New builds a Server with its routes registered.
func New(service driving.ActivityService, opts Options) *Server {
	s := &Server{
		service: service,
		users:   opts.Users,
		opts:    opts,
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /api/activities/search", s.handleSearch)

	if s.users != nil {
		s.mux.HandleFunc("GET /api/users", s.handleListUsers)
		s.mux.HandleFunc("POST /api/users", s.handleCreateUser)
		s.mux.HandleFunc("GET /api/users/{id}", s.handleGetUser)
		s.mux.HandleFunc("PUT /api/users/{id}", s.handleUpdateUser)
		s.mux.HandleFunc("DELETE /api/users/{id}", s.handleDeleteUser)
	}

	if opts.Metrics != nil {
		s.mux.Handle("GET /metrics", opts.Metrics)
	}

	if opts.StaticDir != "" {
		s.mux.HandleFunc("/", s.handleStatic)
	}

	return s
}

// Handler returns the fully wrapped handler chain.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = corsMiddleware(h, s.opts.AllowedOrigins)
	h = requestLogMiddleware(h)
	return h
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("http: listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleSearch runs an activity search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	activities, err := s.service.Search(r.Context(), req.Query, req.Location)
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		logger.Error("http: search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, domain.SearchResponse{
		Success:    true,
		Activities: activities,
		Total:      len(activities),
	})
}

// handleStatic serves files from StaticDir, falling back to index.html
// for client-side routes.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := filepath.Clean(r.URL.Path)
	full := filepath.Join(s.opts.StaticDir, name)

	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.opts.StaticDir, "index.html"))
}

// errorResponse is the envelope for every failure.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("http: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
