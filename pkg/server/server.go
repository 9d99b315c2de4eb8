// Package server exposes network analysis over HTTP. Clients POST raw
// network documents and get back full analysis reports; stored reports
// can be fetched again by id.
//
// Endpoints:
//
//	GET  /healthz          liveness probe
//	POST /v1/reports       analyze a network document (JSON body)
//	GET  /v1/reports/{id}  fetch a previously built report
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/transitlab/netlint/pkg/cache"
	"github.com/transitlab/netlint/pkg/errors"
	"github.com/transitlab/netlint/pkg/report"
)

// maxBodyBytes caps uploaded network documents at 64 MiB.
const maxBodyBytes = 64 << 20

// reportTTL bounds how long cached analysis results are kept.
const reportTTL = 24 * time.Hour

// Server handles analysis requests. Reports go to the store for
// retrieval by id; the cache short-circuits repeated analysis of
// identical documents.
type Server struct {
	store  report.Store
	cache  cache.Cache
	logger *log.Logger
}

// New creates a Server. cache may be nil to disable caching.
func New(store report.Store, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, cache: c, logger: logger}
}

// Handler returns the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/reports", s.handleCreateReport)
		r.Get("/reports/{id}", s.handleGetReport)
	})
	return r
}

// ListenAndServe runs the server at addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(data) == 0 {
		s.writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "empty request body"))
		return
	}

	ctx := r.Context()
	key := cache.NetworkKey(data)

	if cached, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		var rep report.Report
		if err := json.Unmarshal(cached, &rep); err == nil {
			s.logger.Debug("cache hit", "key", key)
			if err := s.store.Put(ctx, &rep); err != nil {
				s.writeError(w, http.StatusInternalServerError, err)
				return
			}
			writeJSON(w, http.StatusCreated, &rep)
			return
		}
	}

	rep, err := report.Build(data)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.store.Put(ctx, rep); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if encoded, err := json.Marshal(rep); err == nil {
		if err := s.cache.Set(ctx, key, encoded, reportTTL); err != nil {
			s.logger.Warn("cache write failed", "key", key, "err", err)
		}
	}

	writeJSON(w, http.StatusCreated, rep)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, err := s.store.Get(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errors.ErrCodeReportNotFound) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// logRequests logs one line per request with method, path, status, and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed", "status", status, "err", err)

	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
