package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// Renderer writes a validated resume in one output format.
// Implementations never validate; they assume the input already passed resume.Validate.
type Renderer interface {
	Render(ctx context.Context, out resume.Output, w io.Writer) error
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(ctx context.Context, out resume.Output, w io.Writer) error

func (f RendererFunc) Render(ctx context.Context, out resume.Output, w io.Writer) error {
	return f(ctx, out, w)
}

// Option configures renderers built by New.
type Option func(*options)

type options struct {
	qrCode bool
	qrSize int
}

// WithQRCode embeds a QR code of the first profile link (LinkedIn, GitHub or
// portfolio) in HTML and PDF output. Documents without such a link are
// rendered without a code.
func WithQRCode(enabled bool) Option {
	return func(o *options) {
		o.qrCode = enabled
	}
}

// WithQRCodeSize sets the QR code image size in pixels.
func WithQRCodeSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.qrSize = px
		}
	}
}

func newOptions(opts []Option) options {
	o := options{qrSize: defaultQRSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the renderer for format.
func New(format Format, opts ...Option) (Renderer, error) {
	switch format {
	case FormatText:
		return NewText(), nil
	case FormatMarkdown:
		return NewMarkdown(), nil
	case FormatHTML:
		return NewHTML(opts...), nil
	case FormatPDF:
		return NewPDF(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// Bytes renders out into memory. Nothing is returned unless rendering completed.
func Bytes(ctx context.Context, r Renderer, out resume.Output) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(ctx, out, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAll(w io.Writer, p []byte) error {
	if _, err := w.Write(p); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return nil
}
