package input

import "errors"

var (
	// ErrEmptyInput is returned when the source holds no document at all.
	ErrEmptyInput = errors.New("input is empty")

	// ErrMalformedInput is returned when the payload cannot be decoded into a resume.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnsupportedSource is returned for file extensions or content types with no decoder.
	ErrUnsupportedSource = errors.New("unsupported input source")

	// ErrReadFailed is returned when the underlying reader or file fails.
	ErrReadFailed = errors.New("failed to read input")
)
