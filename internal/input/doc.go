// Package input acquires raw resume documents.
//
// Sources decode JSON or YAML from a reader or a file, or collect answers
// interactively. They only decode: enum membership is checked by
// resume.Map and business rules by resume.Validate. Every decoding or I/O
// failure wraps one of the package sentinels (ErrEmptyInput,
// ErrMalformedInput, ErrUnsupportedSource, ErrReadFailed).
package input
