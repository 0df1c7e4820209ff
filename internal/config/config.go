// Package config declares the application settings read from the environment.
package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/dmitrymomot/resumekit/pkg/config"
	"github.com/dmitrymomot/resumekit/pkg/httpserver"
)

// Storage drivers.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds every setting of the resumekit binary. CLI flags override
// the output and HTTP values.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"resumekit"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"`

	OutputDir          string        `env:"OUTPUT_DIR" envDefault:"."`
	OutputBaseURL      string        `env:"OUTPUT_BASE_URL"`
	OutputWriteTimeout time.Duration `env:"OUTPUT_WRITE_TIMEOUT" envDefault:"30s"`
	OutputFormat       string        `env:"OUTPUT_FORMAT" envDefault:"TEXT"`
	PDFQRCode          bool          `env:"PDF_QR_CODE" envDefault:"false"`
	QRCodeSize         int           `env:"QR_CODE_SIZE" envDefault:"256"`

	// CleanOnFailure removes the artifact a previous run left at the output
	// path when the current run fails, so a failed run leaves no file behind.
	CleanOnFailure bool `env:"OUTPUT_CLEAN_ON_FAILURE" envDefault:"false"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"local"`
	S3            S3

	HTTP         httpserver.Config
	MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
}

// S3 configures the S3 output sink.
type S3 struct {
	Bucket         string        `env:"S3_BUCKET"`
	Region         string        `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
	Prefix         string        `env:"S3_PREFIX" envDefault:"resumes"`
	PublicURL      string        `env:"S3_PUBLIC_URL"`
	UploadTimeout  time.Duration `env:"S3_UPLOAD_TIMEOUT" envDefault:"30s"`
	MaxAttempts    int           `env:"S3_MAX_ATTEMPTS" envDefault:"3"`
}

// Load reads the configuration from the environment and an optional .env file.
func Load() (Config, error) {
	var cfg Config
	if err := pkgconfig.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageLocal:
	case StorageS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("%w: S3_BUCKET is required when STORAGE_DRIVER=s3", ErrInvalidConfig)
		}
		if c.S3.MaxAttempts < 1 {
			return fmt.Errorf("%w: S3_MAX_ATTEMPTS must be at least 1", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", ErrInvalidConfig, c.StorageDriver)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: HTTP_MAX_BODY_BYTES must be positive", ErrInvalidConfig)
	}
	return nil
}
