package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the pipeline run identifier.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}

// RequestID records the HTTP request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Stage records the pipeline stage ("input", "validation", "output").
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

// Transition records a state change as "from -> to".
func Transition(from, to string) slog.Attr {
	return slog.String("transition", from+" -> "+to)
}

func State(name string) slog.Attr {
	return slog.String("state", name)
}

// OutputFormat records the output format.
func OutputFormat(name string) slog.Attr {
	return slog.String("format", name)
}

// Field records the resume field a message is about.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Kind records a violation kind such as "length_out_of_range".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// Source records where the input came from (a file path, "stdin", "http").
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Path records a storage path or URL.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Size records a byte count.
func Size(n int64) slog.Attr {
	return slog.Int64("size", n)
}

// Duration records an elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
