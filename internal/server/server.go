// Package server exposes the resume pipeline over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/resumekit/internal/pipeline"
	"github.com/dmitrymomot/resumekit/internal/render"
	"github.com/dmitrymomot/resumekit/pkg/file"
	"github.com/dmitrymomot/resumekit/pkg/httpserver"
	"github.com/dmitrymomot/resumekit/pkg/logger"
	"github.com/dmitrymomot/resumekit/pkg/requestid"
)

const defaultMaxBodyBytes = 1 << 20

// Handlers serves the validate and render endpoints.
type Handlers struct {
	logger        *slog.Logger
	defaultFormat render.Format
	renderOpts    []render.Option
	storage       file.Storage
	maxBodyBytes  int64
}

// Option configures Handlers.
type Option func(*Handlers)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handlers) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithDefaultFormat sets the format used when a render request has no
// format parameter.
func WithDefaultFormat(f render.Format) Option {
	return func(h *Handlers) { h.defaultFormat = f }
}

// WithRenderOptions passes options to every renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(h *Handlers) { h.renderOpts = append(h.renderOpts, opts...) }
}

// WithStorage enables store=true on render requests, which keeps a copy of
// the artifact under runs/<run id>/.
func WithStorage(s file.Storage) Option {
	return func(h *Handlers) { h.storage = s }
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handlers) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// New creates the HTTP handlers.
func New(opts ...Option) *Handlers {
	h := &Handlers{
		logger:        logger.Discard(),
		defaultFormat: render.FormatText,
		maxBodyBytes:  defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("server"))
	return h
}

// Router mounts every endpoint:
//
//	POST /v1/resumes/validate
//	POST /v1/resumes/render?format=pdf
//	GET  /healthz
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware(pipeline.WithRunID),
		h.accessLog,
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(h.logger))

	r.Route("/v1/resumes", func(r chi.Router) {
		r.Post("/validate", h.validate)
		r.Post("/render", h.render)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, problem{Message: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusMethodNotAllowed, problem{Message: "method not allowed"})
	})

	return r
}

func (h *Handlers) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		level := slog.LevelInfo
		if ww.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "http request",
			slog.String("method", r.Method),
			logger.Path(r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Size(int64(ww.BytesWritten())),
			logger.Duration(time.Since(start)),
		)
	})
}
