// Command resumekit validates a resume and renders it as text, Markdown,
// HTML or PDF. With -serve it exposes the same pipeline over HTTP.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/dmitrymomot/resumekit/internal/config"
	"github.com/dmitrymomot/resumekit/internal/input"
	"github.com/dmitrymomot/resumekit/internal/pipeline"
	"github.com/dmitrymomot/resumekit/internal/render"
	"github.com/dmitrymomot/resumekit/internal/server"
	"github.com/dmitrymomot/resumekit/pkg/file"
	"github.com/dmitrymomot/resumekit/pkg/httpserver"
	"github.com/dmitrymomot/resumekit/pkg/logger"
	"github.com/dmitrymomot/resumekit/pkg/requestid"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	input        string
	format       string
	outputDir    string
	validateOnly bool
	clean        bool
	serve        bool
	addr         string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("resumekit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.input, "input", "", "resume file (.json, .yaml, .yml); prompts on stdin when empty")
	fs.StringVar(&f.format, "format", "", "output format: TEXT, MARKDOWN, HTML or PDF")
	fs.StringVar(&f.outputDir, "output-dir", "", "directory for the rendered file (local storage only)")
	fs.BoolVar(&f.validateOnly, "validate", false, "validate the resume without rendering it")
	fs.BoolVar(&f.clean, "clean", false, "remove the output left by an earlier run when this run fails")
	fs.BoolVar(&f.serve, "serve", false, "serve the HTTP API instead of running once")
	fs.StringVar(&f.addr, "addr", "", "HTTP listen address for -serve")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return flags{}, err
	}
	return f, nil
}

// run returns the process exit code. Every failure is reported as a single
// line on stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "resumekit: %v\n", err)
		return 1
	}
	applyFlags(&cfg, f)

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "resumekit: %v\n", err)
		return 1
	}

	if err := execute(ctx, cfg, f, log, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "resumekit: %v\n", err)
		return 1
	}
	return 0
}

func applyFlags(cfg *config.Config, f flags) {
	if f.format != "" {
		cfg.OutputFormat = f.format
	}
	if f.outputDir != "" {
		cfg.OutputDir = f.outputDir
	}
	if f.addr != "" {
		cfg.HTTP.Addr = f.addr
	}
	if f.clean {
		cfg.CleanOnFailure = true
	}
}

func newLogger(cfg config.Config, w io.Writer) (log *slog.Logger, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("logger: %v", r)
		}
	}()
	return logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("version", version)),
		logger.WithContextExtractors(
			pipeline.RunIDExtractor(),
			requestid.LoggerExtractor(),
		),
	), nil
}

func execute(ctx context.Context, cfg config.Config, f flags, log *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	renderOpts := []render.Option{
		render.WithQRCode(cfg.PDFQRCode),
		render.WithQRCodeSize(cfg.QRCodeSize),
	}

	if f.serve {
		format, err := outputFormat(cfg)
		if err != nil {
			return err
		}
		storage, err := newStorage(ctx, cfg)
		if err != nil {
			return err
		}
		return serve(ctx, cfg, log, server.New(
			server.WithLogger(log),
			server.WithDefaultFormat(format),
			server.WithRenderOptions(renderOpts...),
			server.WithStorage(storage),
			server.WithMaxBodyBytes(cfg.MaxBodyBytes),
		))
	}

	var src input.Source
	if f.input != "" {
		src = input.File(f.input)
	} else {
		src = input.Prompt(stdin, stdout)
	}

	if f.validateOnly {
		res, err := pipeline.New(src, nil, pipeline.WithLogger(log)).Validate(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Resume of %s is valid.\n", res.Output.FullName)
		return nil
	}

	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}
	renderer, err := render.New(format, renderOpts...)
	if err != nil {
		return &pipeline.Error{Stage: pipeline.StageOutput, Cause: err}
	}

	var buf bytes.Buffer
	if _, err := pipeline.New(src, renderer, pipeline.WithLogger(log), pipeline.WithFormat(format)).Run(ctx, &buf); err != nil {
		if cfg.CleanOnFailure {
			if storage, serr := newStorage(ctx, cfg); serr == nil {
				removeStale(ctx, storage, format.FileName(), log)
			}
		}
		return err
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return &pipeline.Error{Stage: pipeline.StageOutput, Cause: err}
	}
	stored, err := storage.Put(ctx, format.FileName(), &buf, format.ContentType())
	if err != nil {
		if cfg.CleanOnFailure {
			removeStale(ctx, storage, format.FileName(), log)
		}
		return &pipeline.Error{Stage: pipeline.StageOutput, Cause: err}
	}

	log.DebugContext(ctx, "resume stored", logger.Path(stored.RelativePath), logger.Size(stored.Size))
	fmt.Fprintf(stdout, "Resume written to %s\n", storage.URL(stored.RelativePath))
	return nil
}

// outputFormat is only consulted on paths that render.
func outputFormat(cfg config.Config) (render.Format, error) {
	format, err := render.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return "", &pipeline.Error{Stage: pipeline.StageOutput, Cause: err}
	}
	return format, nil
}

// removeStale deletes the artifact an earlier run left at name. The current
// run already failed, so problems here are only logged.
func removeStale(ctx context.Context, storage file.Storage, name string, log *slog.Logger) {
	ctx = context.WithoutCancel(ctx)
	if !storage.Exists(ctx, name) {
		return
	}
	if err := storage.Delete(ctx, name); err != nil {
		log.WarnContext(ctx, "failed to remove stale output", logger.Path(name), logger.Error(err))
		return
	}
	log.InfoContext(ctx, "removed stale output", logger.Path(name))
}

func newStorage(ctx context.Context, cfg config.Config) (file.Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageS3:
		return file.NewS3Storage(ctx, file.S3Config{
			Bucket:         cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			BaseURL:        cfg.S3.PublicURL,
			Prefix:         cfg.S3.Prefix,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		},
			file.WithS3UploadTimeout(cfg.S3.UploadTimeout),
			file.WithS3ConfigOption(awsconfig.WithRetryMaxAttempts(cfg.S3.MaxAttempts)),
		)
	default:
		return file.NewLocalStorage(cfg.OutputDir,
			file.WithLocalWriteTimeout(cfg.OutputWriteTimeout),
			file.WithBaseURL(cfg.OutputBaseURL),
		)
	}
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger, h *server.Handlers) error {
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, h.Router())
}
