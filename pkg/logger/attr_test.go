package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resumekit/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("empty ids yield empty attrs", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.RunID(""))
		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
		assert.Equal(t, slog.Attr{}, logger.Field(""))
	})

	t.Run("keys", func(t *testing.T) {
		assert.Equal(t, "run_id", logger.RunID("x").Key)
		assert.Equal(t, "stage", logger.Stage("input").Key)
		assert.Equal(t, "mapped -> validated", logger.Transition("mapped", "validated").Value.String())
		assert.Equal(t, "state", logger.State("failed").Key)
		assert.Equal(t, "format", logger.OutputFormat("PDF").Key)
		assert.Equal(t, "field", logger.Field("Full name").Key)
		assert.Equal(t, "kind", logger.Kind("banned_term").Key)
		assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
		assert.Equal(t, int64(42), logger.Size(42).Value.Int64())
	})
}
