// Package logger builds *slog.Logger values with functional options, shared
// attribute constructors and context-driven attribute injection.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs every registered
// ContextExtractor on each record. Extractors are how run and request IDs
// reach log lines without being passed around explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(pipeline.RunIDExtractor()),
//	)
//	log.InfoContext(ctx, "resume rendered", logger.OutputFormat("PDF"), logger.Size(n))
//
// Attribute helpers (RunID, Stage, Field, Format and friends) keep key names
// consistent across packages.
package logger
