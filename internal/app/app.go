package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/compliance-backend/internal/auth"
	"github.com/heartmarshall/compliance-backend/internal/config"
	"github.com/heartmarshall/compliance-backend/internal/transport/middleware"
	"github.com/heartmarshall/compliance-backend/internal/transport/rest"
)

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "compliance-server")
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps, err := BuildDeps(ctx, cfg, logger, reg)
	if err != nil {
		return err
	}
	defer deps.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, deps, reg, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func newHandler(cfg *config.Config, logger *slog.Logger, deps *Deps, reg *prometheus.Registry, limiter *middleware.RateLimiter) http.Handler {
	checks := []rest.HealthCheck{{Name: "database", Target: deps.Pool}}
	if deps.Redis != nil {
		checks = append(checks, rest.HealthCheck{Name: "redis", Target: rest.PingFunc(deps.Redis.Health), Optional: true})
	}

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), checks...),
		Evaluation: rest.NewEvaluationHandler(deps.Evaluation, logger),
		Bulk:       rest.NewBulkHandler(deps.Bulk, logger),
		Query:      rest.NewQueryHandler(deps.Query, logger),
		Lineage:    rest.NewLineageHandler(deps.Lineage, logger),
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	api := middleware.Chain(
		middleware.Auth(tokens),
		middleware.Logger(logger),
		limiter.Limit(cfg.Server.RateLimit),
	)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(handlers, reg, api))
}
