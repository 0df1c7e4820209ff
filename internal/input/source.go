package input

import (
	"context"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// Source produces one raw resume document per call.
// The returned document is not mapped or validated.
type Source interface {
	Acquire(ctx context.Context) (resume.Document, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (resume.Document, error)

func (f SourceFunc) Acquire(ctx context.Context) (resume.Document, error) {
	return f(ctx)
}

// Static returns a source that hands out copies of doc.
func Static(doc resume.Document) Source {
	return SourceFunc(func(ctx context.Context) (resume.Document, error) {
		if err := ctx.Err(); err != nil {
			return resume.Document{}, err
		}
		return doc.Clone(), nil
	})
}
