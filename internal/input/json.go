package input

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// JSONSource decodes a single JSON object. Unknown fields and trailing data
// are rejected.
type JSONSource struct {
	r io.Reader
}

func JSON(r io.Reader) *JSONSource {
	return &JSONSource{r: r}
}

func (s *JSONSource) Acquire(ctx context.Context) (resume.Document, error) {
	if err := ctx.Err(); err != nil {
		return resume.Document{}, err
	}

	rr := &recordingReader{r: s.r}
	dec := json.NewDecoder(rr)
	dec.DisallowUnknownFields()

	var doc resume.Document
	if err := dec.Decode(&doc); err != nil {
		return resume.Document{}, decodeError(rr, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if rr.err != nil {
			return resume.Document{}, fmt.Errorf("%w: %w", ErrReadFailed, rr.err)
		}
		return resume.Document{}, fmt.Errorf("%w: unexpected data after the resume object", ErrMalformedInput)
	}
	return doc, nil
}

// recordingReader remembers the first non-EOF read error so that decoder
// failures can be told apart from I/O failures.
type recordingReader struct {
	r   io.Reader
	err error
}

func (rr *recordingReader) Read(p []byte) (int, error) {
	n, err := rr.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && rr.err == nil {
		rr.err = err
	}
	return n, err
}

func decodeError(rr *recordingReader, err error) error {
	switch {
	case rr.err != nil:
		return fmt.Errorf("%w: %w", ErrReadFailed, rr.err)
	case errors.Is(err, io.EOF):
		return ErrEmptyInput
	default:
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
}
