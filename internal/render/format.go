package render

import (
	"fmt"
	"strings"
)

// Format selects an output renderer.
type Format string

const (
	FormatText     Format = "TEXT"
	FormatMarkdown Format = "MARKDOWN"
	FormatHTML     Format = "HTML"
	FormatPDF      Format = "PDF"
)

var formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatPDF}

// Formats returns the supported formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat resolves a format name case-insensitively.
// Anything else, including an empty name, yields ErrUnsupportedFormat.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}

// Extension returns the file extension without the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	case FormatPDF:
		return "pdf"
	default:
		return ""
	}
}

// ContentType returns the MIME type of rendered output.
func (f Format) ContentType() string {
	switch f {
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// FileName is the name of the output file for this format, e.g. "Resume.pdf".
func (f Format) FileName() string {
	return "Resume." + f.Extension()
}

func (f Format) String() string {
	return string(f)
}
