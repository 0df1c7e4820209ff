package input

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// YAMLSource decodes the first YAML document from a reader. Keys that do not
// belong to the resume model are rejected.
type YAMLSource struct {
	r io.Reader
}

func YAML(r io.Reader) *YAMLSource {
	return &YAMLSource{r: r}
}

func (s *YAMLSource) Acquire(ctx context.Context) (resume.Document, error) {
	if err := ctx.Err(); err != nil {
		return resume.Document{}, err
	}

	rr := &recordingReader{r: s.r}
	dec := yaml.NewDecoder(rr)
	dec.KnownFields(true)

	var doc resume.Document
	if err := dec.Decode(&doc); err != nil {
		return resume.Document{}, decodeError(rr, err)
	}
	return doc, nil
}
