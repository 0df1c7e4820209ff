// Package file provides output sinks for rendered artifacts with local
// filesystem and S3 backends.
//
// Both backends implement Storage:
//
//	storage, err := file.NewLocalStorage("./out")
//	if err != nil {
//		return err
//	}
//	f, err := storage.Put(ctx, "Resume.pdf", bytes.NewReader(data), "application/pdf")
//
// LocalStorage writes through a temporary file and renames it into place,
// so a failed or canceled write never leaves a partial artifact. All paths
// are resolved inside the base directory; traversal attempts fail with
// ErrInvalidPath.
//
// S3Storage works with AWS S3 and S3-compatible services such as MinIO:
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//		Bucket:         "resumes",
//		Region:         "us-east-1",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	})
//
// S3 failures are classified into package errors (ErrFileNotFound,
// ErrAccessDenied, ErrBucketNotFound, ErrServiceUnavailable and the
// timeout and cancellation errors) so callers can use errors.Is.
package file
