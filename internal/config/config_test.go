package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resumekit/internal/config"
	pkgconfig "github.com/dmitrymomot/resumekit/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pkgconfig.ResetCache()
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.OutputDir)
		assert.Equal(t, "TEXT", cfg.OutputFormat)
		assert.Equal(t, config.StorageLocal, cfg.StorageDriver)
		assert.Equal(t, ":8080", cfg.HTTP.Addr)
		assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.False(t, cfg.PDFQRCode)
		assert.False(t, cfg.CleanOnFailure)
		assert.Equal(t, 256, cfg.QRCodeSize)
		assert.Empty(t, cfg.OutputBaseURL)
		assert.Equal(t, 30*time.Second, cfg.OutputWriteTimeout)
		assert.Equal(t, 30*time.Second, cfg.S3.UploadTimeout)
		assert.Equal(t, 3, cfg.S3.MaxAttempts)
	})

	t.Run("environment", func(t *testing.T) {
		pkgconfig.ResetCache()
		t.Setenv("OUTPUT_FORMAT", "PDF")
		t.Setenv("PDF_QR_CODE", "true")
		t.Setenv("STORAGE_DRIVER", "s3")
		t.Setenv("S3_BUCKET", "cv-bucket")
		t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("S3_UPLOAD_TIMEOUT", "5s")
		t.Setenv("S3_MAX_ATTEMPTS", "7")
		t.Setenv("OUTPUT_CLEAN_ON_FAILURE", "true")
		t.Setenv("OUTPUT_BASE_URL", "https://files.example.com/cv")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "PDF", cfg.OutputFormat)
		assert.True(t, cfg.PDFQRCode)
		assert.Equal(t, "cv-bucket", cfg.S3.Bucket)
		assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, 5*time.Second, cfg.S3.UploadTimeout)
		assert.Equal(t, 7, cfg.S3.MaxAttempts)
		assert.True(t, cfg.CleanOnFailure)
		assert.Equal(t, "https://files.example.com/cv", cfg.OutputBaseURL)
	})

	t.Run("s3 needs at least one attempt", func(t *testing.T) {
		pkgconfig.ResetCache()
		t.Setenv("STORAGE_DRIVER", "s3")
		t.Setenv("S3_BUCKET", "cv-bucket")
		t.Setenv("S3_MAX_ATTEMPTS", "0")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("s3 requires a bucket", func(t *testing.T) {
		pkgconfig.ResetCache()
		t.Setenv("STORAGE_DRIVER", "s3")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		pkgconfig.ResetCache()
		t.Setenv("STORAGE_DRIVER", "ftp")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
