// Command suggestion-ingest consumes suggestion payloads from Kafka and
// records them on their evaluation records, resetting each written slot to
// pending. Malformed or rejected messages are logged and skipped. A store
// failure that outlives its retries exits with the batch uncommitted.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/compliance-backend/internal/adapter/kafka"
	"github.com/heartmarshall/compliance-backend/internal/app"
	"github.com/heartmarshall/compliance-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "suggestion-ingest")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.BuildDeps(ctx, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("build dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.Close()

	consumer, err := kafka.NewConsumer(cfg.Kafka, deps.Evaluation, logger)
	if err != nil {
		logger.Error("create consumer", slog.String("error", err.Error()))
		deps.Close()
		os.Exit(1)
	}

	logger.Info("consuming suggestions",
		slog.String("topic", cfg.Kafka.SuggestionTopic),
		slog.String("group", cfg.Kafka.ConsumerGroup),
	)
	if err := consumer.Run(ctx); err != nil {
		logger.Error("consumer stopped", slog.String("error", err.Error()))
		deps.Close()
		os.Exit(1)
	}
	logger.Info("consumer stopped")
}
