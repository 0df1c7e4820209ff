package input

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/resumekit/internal/resume"
)

// FileSource reads a resume from disk, choosing the decoder by extension:
// .json for JSON, .yaml or .yml for YAML.
type FileSource struct {
	path string
}

func File(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Acquire(ctx context.Context) (resume.Document, error) {
	decode, err := decoderForExtension(filepath.Ext(s.path))
	if err != nil {
		return resume.Document{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return resume.Document{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer f.Close()

	return decode(f).Acquire(ctx)
}

func decoderForExtension(ext string) (func(r io.Reader) Source, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return func(r io.Reader) Source { return JSON(r) }, nil
	case ".yaml", ".yml":
		return func(r io.Reader) Source { return YAML(r) }, nil
	default:
		return nil, fmt.Errorf("%w: file extension %q", ErrUnsupportedSource, ext)
	}
}

// ForContentType picks a decoder for an HTTP request body. An empty content
// type is treated as JSON.
func ForContentType(contentType string, r io.Reader) (Source, error) {
	if strings.TrimSpace(contentType) == "" {
		return JSON(r), nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedSource, contentType)
	}
	switch mediaType {
	case "application/json":
		return JSON(r), nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return YAML(r), nil
	default:
		return nil, fmt.Errorf("%w: content type %q", ErrUnsupportedSource, mediaType)
	}
}
