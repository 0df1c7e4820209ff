package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/resumekit/internal/input"
	"github.com/dmitrymomot/resumekit/internal/render"
	"github.com/dmitrymomot/resumekit/internal/resume"
	"github.com/dmitrymomot/resumekit/pkg/logger"
)

// Pipeline turns one input document into rendered output:
// acquire, map, validate, convert to output form, render.
// A Pipeline holds no per-run state and may be reused; every call to Run or
// Validate gets its own Machine.
type Pipeline struct {
	source   input.Source
	renderer render.Renderer
	format   render.Format
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithFormat records the output format in logs and results.
func WithFormat(f render.Format) Option {
	return func(p *Pipeline) {
		p.format = f
	}
}

// New creates a pipeline. renderer may be nil for pipelines that only validate.
func New(source input.Source, renderer render.Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:   source,
		renderer: renderer,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("pipeline"))
	return p
}

// Result describes a finished run.
type Result struct {
	RunID    string
	State    State
	Failure  *Error // set when State is StateFailed
	Format   render.Format
	Output   resume.Output
	Written  int64
	Duration time.Duration
}

// Run executes every stage and writes the rendered document to w.
// On failure the returned error is a *Error tagged with the failing stage.
func (p *Pipeline) Run(ctx context.Context, w io.Writer) (Result, error) {
	ctx, runID := ensureRunID(ctx)
	start := time.Now()
	m := NewMachine(p.logTransition)
	res := Result{RunID: runID, Format: p.format}

	out, err := p.prepare(ctx, m)
	if err != nil {
		return p.finish(res, m, start), err
	}
	res.Output = out

	if p.renderer == nil {
		return p.finish(res, m, start), p.fail(ctx, m, StageOutput, ErrNoRenderer)
	}

	cw := &countingWriter{w: w}
	if err := p.renderer.Render(ctx, out, cw); err != nil {
		res.Written = cw.n
		return p.finish(res, m, start), p.fail(ctx, m, StageOutput, err)
	}
	res.Written = cw.n

	if err := m.Fire(ctx, EventRendered); err != nil {
		return p.finish(res, m, start), p.fail(ctx, m, StageOutput, err)
	}

	res = p.finish(res, m, start)
	p.logger.InfoContext(ctx, "resume rendered",
		logger.OutputFormat(p.format.String()),
		logger.Size(res.Written),
		logger.Duration(res.Duration),
	)
	return res, nil
}

// Validate runs the input and validation stages only.
func (p *Pipeline) Validate(ctx context.Context) (Result, error) {
	ctx, runID := ensureRunID(ctx)
	start := time.Now()
	m := NewMachine(p.logTransition)
	res := Result{RunID: runID, Format: p.format}

	out, err := p.prepare(ctx, m)
	if err != nil {
		return p.finish(res, m, start), err
	}
	res.Output = out

	res = p.finish(res, m, start)
	p.logger.InfoContext(ctx, "resume is valid", logger.Duration(res.Duration))
	return res, nil
}

// prepare drives the machine from awaiting_input to validated.
func (p *Pipeline) prepare(ctx context.Context, m *Machine) (resume.Output, error) {
	raw, err := p.source.Acquire(ctx)
	if err != nil {
		return resume.Output{}, p.fail(ctx, m, StageInput, err)
	}
	doc, err := resume.Map(raw)
	if err != nil {
		return resume.Output{}, p.fail(ctx, m, StageInput, err)
	}
	if err := m.Fire(ctx, EventMapped); err != nil {
		return resume.Output{}, p.fail(ctx, m, StageInput, err)
	}

	if err := resume.Validate(doc); err != nil {
		return resume.Output{}, p.fail(ctx, m, StageValidation, err)
	}
	if err := m.Fire(ctx, EventValidated); err != nil {
		return resume.Output{}, p.fail(ctx, m, StageValidation, err)
	}

	return resume.ToOutput(doc), nil
}

func (p *Pipeline) fail(ctx context.Context, m *Machine, stage Stage, cause error) error {
	e := newError(stage, cause)
	_ = m.Fail(ctx, e)

	attrs := []any{logger.Stage(string(stage)), logger.Error(cause)}
	if e.Field != "" {
		attrs = append(attrs, logger.Field(e.Field), logger.Kind(e.Kind))
	}
	level := slog.LevelError
	if stage == StageValidation {
		level = slog.LevelWarn
	}
	p.logger.Log(ctx, level, "resume run failed", attrs...)
	return e
}

func (p *Pipeline) finish(res Result, m *Machine, start time.Time) Result {
	res.State = m.Current()
	res.Failure = m.Failure()
	res.Duration = time.Since(start)
	return res
}

func (p *Pipeline) logTransition(ctx context.Context, from, to State, _ Event) {
	p.logger.DebugContext(ctx, "pipeline transition", logger.Transition(string(from), string(to)))
	if to.Terminal() {
		p.logger.DebugContext(ctx, "pipeline finished", logger.State(string(to)))
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
