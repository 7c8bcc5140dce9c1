package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/tflwatch/internal/adapters/sqlstore"
	"github.com/fr0stylo/tflwatch/internal/app/services"
	"github.com/fr0stylo/tflwatch/internal/config"
	"github.com/fr0stylo/tflwatch/internal/db"
	"github.com/fr0stylo/tflwatch/internal/observability"
	"github.com/fr0stylo/tflwatch/internal/tfl"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return services.ExitConfig
	}

	log := observability.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVer:        cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
		Component:         observability.ComponentIngest,
		Environment:       cfg.Environment,
	})
	if err != nil {
		log.Error("Failed to initialize OpenTelemetry", "error", err)
		return services.ExitConfig
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	database, err := db.New(db.Options{Driver: cfg.Database.Driver, DSN: cfg.Database.DataSourceName()})
	if err != nil {
		log.Error("Failed to open database", "driver", cfg.Database.Driver, "error", err)
		return services.ExitStoreFailed
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	client := tfl.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.AppKey, cfg.Upstream.Timeout)
	pipeline := services.NewPipeline(client, sqlstore.NewIngestionStoreFactory(database), log)

	outcome, err := pipeline.Run(ctx)
	runCtx := observability.WithRunID(ctx, outcome.RunID)
	if err != nil {
		log.ErrorContext(runCtx, "Ingestion failed", "outcome", outcome.Status, "error", err)
	} else {
		log.InfoContext(runCtx, "Ingestion finished",
			"outcome", outcome.Status,
			"attempt_id", outcome.AttemptID,
			"fetch_status", outcome.FetchStatus,
			"http_code", outcome.HTTPCode,
		)
	}

	if cfg.Database.LogTiming {
		logDBLatencyStats(runCtx, log, database)
	}
	return outcome.ExitCode()
}

func logDBLatencyStats(ctx context.Context, log *slog.Logger, database *db.Database) {
	for _, entry := range database.QueryLatencyStats() {
		log.InfoContext(ctx, "db_query_latency",
			"query", entry.Name,
			"count", entry.Count,
			"p50_ms", entry.P50.Milliseconds(),
			"p95_ms", entry.P95.Milliseconds(),
			"max_ms", entry.Max.Milliseconds(),
		)
	}
}
