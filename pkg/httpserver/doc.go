// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, a health-check handler and slog lifecycle logging.
//
// Run listens on the configured address and blocks until the context is
// canceled, SIGINT or SIGTERM arrives, or Shutdown is called. In-flight
// requests get up to the shutdown timeout to finish. Serve does the same on
// a caller-provided listener, which tests use with port 0.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		return err
//	}
//
// Listen and serve failures are wrapped with ErrStart; shutdown failures
// with ErrShutdown.
package httpserver
