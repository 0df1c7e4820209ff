package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

// File describes a stored artifact.
type File struct {
	Filename     string
	Size         int64
	MIMEType     string
	Extension    string
	AbsolutePath string // empty for remote backends
	RelativePath string
}

// Storage is an output sink for rendered artifacts.
type Storage interface {
	// Put writes the content of r to path, replacing any existing object.
	Put(ctx context.Context, path string, r io.Reader, contentType string) (*File, error)
	// Delete removes a single stored object.
	Delete(ctx context.Context, path string) error
	// Exists reports whether an object is stored at path.
	Exists(ctx context.Context, path string) bool
	// URL returns the location a client can fetch the object from.
	URL(path string) string
}

const defaultContentType = "application/octet-stream"

// ContentType resolves the MIME type for a stored object. An explicit type
// wins; otherwise the extension of name is consulted.
func ContentType(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return defaultContentType
}

// objectKey normalizes a slash-separated key and rejects traversal.
func objectKey(p string) (string, error) {
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/")
	if p == "" || strings.Contains(p, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return p, nil
}
