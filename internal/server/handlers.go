package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/dmitrymomot/resumekit/internal/input"
	"github.com/dmitrymomot/resumekit/internal/pipeline"
	"github.com/dmitrymomot/resumekit/internal/render"
	"github.com/dmitrymomot/resumekit/internal/resume"
	"github.com/dmitrymomot/resumekit/pkg/logger"
)

// RunIDHeader carries the pipeline run ID on every pipeline response.
const RunIDHeader = "X-Run-ID"

func (h *Handlers) source(w http.ResponseWriter, r *http.Request) input.Source {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	src, err := input.ForContentType(r.Header.Get("Content-Type"), body)
	if err != nil {
		return input.SourceFunc(func(context.Context) (resume.Document, error) {
			return resume.Document{}, err
		})
	}
	return src
}

func (h *Handlers) validate(w http.ResponseWriter, r *http.Request) {
	p := pipeline.New(h.source(w, r), nil, pipeline.WithLogger(h.logger))
	res, err := p.Validate(r.Context())
	w.Header().Set(RunIDHeader, res.RunID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request) {
	format := h.defaultFormat
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := render.ParseFormat(name)
		if err != nil {
			writeProblem(w, r, http.StatusBadRequest, problem{
				Stage:   string(pipeline.StageOutput),
				Kind:    "unsupported_format",
				Message: err.Error(),
			})
			return
		}
		format = f
	}

	store, err := h.wantsStore(r)
	if err != nil {
		writeProblem(w, r, http.StatusBadRequest, problem{Message: err.Error()})
		return
	}

	renderer, err := render.New(format, h.renderOpts...)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	p := pipeline.New(h.source(w, r), renderer, pipeline.WithLogger(h.logger), pipeline.WithFormat(format))
	res, err := p.Run(r.Context(), &buf)
	w.Header().Set(RunIDHeader, res.RunID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if store {
		key := path.Join("runs", res.RunID, format.FileName())
		if _, err := h.storage.Put(r.Context(), key, bytes.NewReader(buf.Bytes()), format.ContentType()); err != nil {
			h.logger.ErrorContext(r.Context(), "failed to store rendered resume", logger.Path(key), logger.Error(err))
			writeProblem(w, r, http.StatusBadGateway, problem{
				Stage:   string(pipeline.StageOutput),
				Message: "failed to store rendered resume",
			})
			return
		}
		w.Header().Set("Content-Location", h.storage.URL(key))
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handlers) wantsStore(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("store")
	if raw == "" {
		return false, nil
	}
	store, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid store parameter %q", raw)
	}
	if store && h.storage == nil {
		return false, errors.New("storage is not configured")
	}
	return store, nil
}

// writeError maps a pipeline failure onto an HTTP status.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	pe, ok := pipeline.AsError(err)
	if !ok {
		h.logger.ErrorContext(r.Context(), "unexpected handler error", logger.Error(err))
		writeProblem(w, r, http.StatusInternalServerError, problem{Message: http.StatusText(http.StatusInternalServerError)})
		return
	}

	body := problem{
		Stage:   string(pe.Stage),
		Field:   pe.Field,
		Kind:    pe.Kind,
		Message: pe.Cause.Error(),
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, pipeline.ErrValidation):
		writeProblem(w, r, http.StatusUnprocessableEntity, body)
	case errors.As(err, &tooLarge):
		writeProblem(w, r, http.StatusRequestEntityTooLarge, body)
	case errors.Is(err, input.ErrUnsupportedSource):
		writeProblem(w, r, http.StatusUnsupportedMediaType, body)
	case errors.Is(err, pipeline.ErrInputAcquisition):
		writeProblem(w, r, http.StatusBadRequest, body)
	default:
		body.Message = "failed to render resume"
		writeProblem(w, r, http.StatusInternalServerError, body)
	}
}
