package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage implements Storage on the local filesystem.
// All operations are confined to baseDir.
type LocalStorage struct {
	baseDir      string // absolute
	baseURL      string
	writeTimeout time.Duration
}

// LocalOption defines a function that configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalWriteTimeout bounds a single Put call.
func WithLocalWriteTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.writeTimeout = timeout
	}
}

// WithBaseURL sets the prefix URL returns for stored files.
// Without it URL returns the absolute filesystem path.
func WithBaseURL(baseURL string) LocalOption {
	return func(s *LocalStorage) {
		if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		s.baseURL = baseURL
	}
}

// NewLocalStorage creates a storage rooted at baseDir, creating the
// directory when it does not exist.
func NewLocalStorage(baseDir string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	s := &LocalStorage{baseDir: absBaseDir}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Put writes r into a temporary file next to the target and renames it
// into place once the copy completes, so readers never observe a partial
// artifact and a failed write leaves the previous file untouched.
func (s *LocalStorage) Put(ctx context.Context, path string, r io.Reader, contentType string) (*File, error) {
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}
	if absPath == s.baseDir {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(absPath)+".*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}
	tmpName := tmp.Name()
	discard := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	written, err := copyContext(ctx, tmp, r)
	if err != nil {
		discard()
		return nil, err
	}
	if err := tmp.Chmod(0o644); err != nil {
		discard()
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmpName, absPath); err != nil {
		_ = os.Remove(tmpName)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	relPath, err := filepath.Rel(s.baseDir, absPath)
	if err != nil {
		relPath = path
	}

	name := filepath.Base(absPath)
	return &File{
		Filename:     name,
		Size:         written,
		MIMEType:     ContentType(name, contentType),
		Extension:    filepath.Ext(name),
		AbsolutePath: absPath,
		RelativePath: filepath.ToSlash(relPath),
	}, nil
}

// copyContext copies in 32KB chunks, checking ctx between chunks.
func copyContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	var written int64
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			nw, writeErr := dst.Write(buf[:n])
			written += int64(nw)
			if writeErr != nil {
				return written, fmt.Errorf("%w: %v", ErrFailedToWriteFile, writeErr)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("%w: %v", ErrFailedToReadFile, readErr)
		}
	}
}

// Delete removes a single file. Directories are refused.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteFile, err)
	}
	return nil
}

// Exists reports whether path exists. Invalid paths and a canceled context
// yield false.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}

	_, err = os.Stat(absPath)
	return err == nil
}

// URL returns baseURL joined with path, or the absolute file path when no
// base URL is configured.
func (s *LocalStorage) URL(path string) string {
	path = filepath.ToSlash(filepath.Clean(path))
	if s.baseURL == "" {
		return filepath.Join(s.baseDir, filepath.FromSlash(strings.TrimPrefix(path, "/")))
	}
	return s.baseURL + strings.TrimPrefix(path, "/")
}

// resolvePath resolves path within baseDir, rejecting anything that
// escapes it.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	path = filepath.Clean(path)
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}
