package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phishguard/phishguard/internal/application/usecase"
	"github.com/phishguard/phishguard/internal/domain/port"
	"github.com/phishguard/phishguard/internal/domain/service"
	"github.com/phishguard/phishguard/internal/infrastructure/config"
	"github.com/phishguard/phishguard/internal/infrastructure/memory"
	"github.com/phishguard/phishguard/internal/infrastructure/messaging"
	"github.com/phishguard/phishguard/internal/infrastructure/seed"
	"github.com/phishguard/phishguard/internal/observability"
	"github.com/phishguard/phishguard/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting phishguard",
		"http_port", cfg.HTTPPort,
		"environment", cfg.Environment,
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: "phishguard",
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownTracer(ctx)
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "phishguard",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(ctx)

	metrics, err := observability.NewMetrics(meterProvider)
	if err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	// Wire infrastructure adapters.
	reportRepo := memory.NewReportRepository()

	var eventPublisher port.EventPublisher
	if cfg.KafkaBroker != "" {
		kafkaPublisher := messaging.NewKafkaPublisher(
			[]string{cfg.KafkaBroker},
			cfg.KafkaTopic,
			logger,
		)
		defer kafkaPublisher.Close()
		eventPublisher = kafkaPublisher
		logger.Info("kafka publishing enabled", "broker", cfg.KafkaBroker, "topic", cfg.KafkaTopic)
	} else {
		eventPublisher = messaging.NewLogPublisher(logger)
	}

	// Wire domain services.
	urlScorer := service.NewURLScorer()

	// Seed the demonstration history.
	if err := seed.Reports(ctx, urlScorer, reportRepo); err != nil {
		logger.Error("failed to seed demonstration reports", "error", err)
		os.Exit(1)
	}

	// Wire use cases.
	analyzeUC := usecase.NewAnalyzeURL(reportRepo, eventPublisher, urlScorer, logger)
	historyUC := usecase.NewListHistory(reportRepo)
	getUC := usecase.NewGetReport(reportRepo)

	// Routes.
	mux := http.NewServeMux()
	rest.NewReportHandler(analyzeUC, historyUC, getUC, metrics, logger).RegisterRoutes(mux)
	rest.NewHealthHandler(logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	// Build middleware chain (applied in reverse order).
	var h http.Handler = mux
	h = rest.LoggingMiddleware(logger)(h)
	h = rest.CORSMiddleware()(h)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("phishguard stopped")
}
