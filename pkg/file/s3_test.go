package file_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resumekit/pkg/file"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func newMockStorage(t *testing.T, cfg file.S3Config) (*file.S3Storage, *MockS3Client) {
	t.Helper()
	client := &MockS3Client{}
	if cfg.Bucket == "" {
		cfg.Bucket = "test-bucket"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	storage, err := file.NewS3Storage(context.Background(), cfg, file.WithS3Client(client))
	require.NoError(t, err)
	t.Cleanup(func() { client.AssertExpectations(t) })
	return storage, client
}

type apiError struct{ code string }

func (e apiError) Error() string                 { return e.code }
func (e apiError) ErrorCode() string             { return e.code }
func (e apiError) ErrorMessage() string          { return e.code }
func (e apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:      "test-bucket",
			Region:      "us-east-1",
			AccessKeyID: "test-key",
			SecretKey:   "test-secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/Resume.pdf", storage.URL("Resume.pdf"))
	})

	t.Run("custom endpoint", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewS3Storage(context.Background(), file.S3Config{
			Bucket:         "test-bucket",
			Region:         "us-east-1",
			Endpoint:       "http://localhost:9000/",
			ForcePathStyle: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/test-bucket/Resume.pdf", storage.URL("Resume.pdf"))
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewS3Storage(context.Background(), file.S3Config{Region: "us-east-1"})
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("missing region", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewS3Storage(context.Background(), file.S3Config{Bucket: "b"})
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("applies aws config options", func(t *testing.T) {
		t.Parallel()
		called := false
		_, err := file.NewS3Storage(context.Background(),
			file.S3Config{Bucket: "b", Region: "us-east-1"},
			file.WithS3ConfigOption(config.WithRetryMaxAttempts(5)),
			file.WithS3ConfigOption(func(*config.LoadOptions) error {
				called = true
				return errors.New("bad profile")
			}),
		)
		assert.True(t, called)
		assert.ErrorIs(t, err, file.ErrFailedToLoadConfig)
	})
}

func TestS3Storage_Put(t *testing.T) {
	t.Parallel()

	t.Run("uploads with prefix and content type", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{Prefix: "/resumes/", BaseURL: "https://cdn.example.com"})

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			body, _ := io.ReadAll(in.Body)
			return aws.ToString(in.Bucket) == "test-bucket" &&
				aws.ToString(in.Key) == "resumes/run-1/Resume.pdf" &&
				aws.ToString(in.ContentType) == "application/pdf" &&
				aws.ToInt64(in.ContentLength) == 8 &&
				string(body) == "%PDF-1.3"
		}), mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		f, err := storage.Put(context.Background(), "run-1/Resume.pdf", strings.NewReader("%PDF-1.3"), "application/pdf")
		require.NoError(t, err)
		assert.Equal(t, "Resume.pdf", f.Filename)
		assert.Equal(t, int64(8), f.Size)
		assert.Equal(t, ".pdf", f.Extension)
		assert.Equal(t, "resumes/run-1/Resume.pdf", f.RelativePath)
		assert.Empty(t, f.AbsolutePath)
		assert.Equal(t, "https://cdn.example.com/resumes/run-1/Resume.pdf", storage.URL("run-1/Resume.pdf"))
	})

	t.Run("upload timeout bounds the request", func(t *testing.T) {
		t.Parallel()
		client := &MockS3Client{}
		t.Cleanup(func() { client.AssertExpectations(t) })
		storage, err := file.NewS3Storage(context.Background(),
			file.S3Config{Bucket: "test-bucket", Region: "us-east-1"},
			file.WithS3Client(client),
			file.WithS3UploadTimeout(time.Minute),
		)
		require.NoError(t, err)

		withDeadline := mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= time.Minute
		})
		client.On("PutObject", withDeadline, mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		_, err = storage.Put(context.Background(), "Resume.txt", strings.NewReader("x"), "")
		require.NoError(t, err)
	})

	t.Run("content type from extension", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})

		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return strings.HasPrefix(aws.ToString(in.ContentType), "text/html")
		}), mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		_, err := storage.Put(context.Background(), "Resume.html", strings.NewReader("<p>"), "")
		require.NoError(t, err)
	})

	t.Run("invalid path", func(t *testing.T) {
		t.Parallel()
		storage, _ := newMockStorage(t, file.S3Config{})
		_, err := storage.Put(context.Background(), "../escape.txt", strings.NewReader("x"), "")
		assert.ErrorIs(t, err, file.ErrInvalidPath)
	})

	t.Run("classified errors", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			err  error
			want error
		}{
			{"access denied", apiError{code: "AccessDenied"}, file.ErrAccessDenied},
			{"throttled", apiError{code: "SlowDown"}, file.ErrServiceUnavailable},
			{"timeout", apiError{code: "RequestTimeout"}, file.ErrRequestTimeout},
			{"no bucket", &types.NoSuchBucket{}, file.ErrBucketNotFound},
			{"deadline", context.DeadlineExceeded, file.ErrOperationTimeout},
			{"canceled", context.Canceled, file.ErrOperationCanceled},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				storage, client := newMockStorage(t, file.S3Config{})
				client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

				_, err := storage.Put(context.Background(), "Resume.txt", strings.NewReader("x"), "")
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("unclassified error keeps cause", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})
		cause := errors.New("connection reset")
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, cause).Once()

		_, err := storage.Put(context.Background(), "Resume.txt", strings.NewReader("x"), "")
		assert.ErrorIs(t, err, cause)
	})
}

func TestS3Storage_DeleteAndExists(t *testing.T) {
	t.Parallel()

	t.Run("delete existing", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})
		key := mock.MatchedBy(func(in *s3.HeadObjectInput) bool { return aws.ToString(in.Key) == "Resume.txt" })
		client.On("HeadObject", mock.Anything, key, mock.Anything).Return(&s3.HeadObjectOutput{}, nil).Once()
		client.On("DeleteObject", mock.Anything, mock.Anything, mock.Anything).Return(&s3.DeleteObjectOutput{}, nil).Once()

		require.NoError(t, storage.Delete(context.Background(), "/Resume.txt"))
	})

	t.Run("delete missing", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})
		client.On("HeadObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, &types.NotFound{}).Once()

		err := storage.Delete(context.Background(), "Resume.txt")
		assert.ErrorIs(t, err, file.ErrFileNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		t.Parallel()
		storage, client := newMockStorage(t, file.S3Config{})
		client.On("HeadObject", mock.Anything, mock.Anything, mock.Anything).Return(&s3.HeadObjectOutput{}, nil).Once()
		client.On("HeadObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, &types.NotFound{}).Once()

		assert.True(t, storage.Exists(context.Background(), "a.txt"))
		assert.False(t, storage.Exists(context.Background(), "b.txt"))
		assert.False(t, storage.Exists(context.Background(), "../c.txt"))
	})
}
