package render

import "errors"

var (
	// ErrUnsupportedFormat is returned for a format name outside TEXT, MARKDOWN, HTML and PDF.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrRenderFailed wraps any failure while producing or writing output.
	ErrRenderFailed = errors.New("failed to render resume")

	// ErrEmptyQRContent is returned when a QR code is requested for blank content.
	ErrEmptyQRContent = errors.New("qr code content cannot be empty")

	// ErrQRCodeFailed is returned when the QR encoder rejects the content.
	ErrQRCodeFailed = errors.New("failed to generate QR code")
)
