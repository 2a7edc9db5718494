package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aescanero/dago-node-drafter/internal/config"
	"github.com/aescanero/dago-node-drafter/internal/worker"
	"github.com/aescanero/dago-node-drafter/pkg/documents"
	"github.com/aescanero/dago-node-drafter/pkg/export"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting drafter worker",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("worker_id", cfg.WorkerID),
	)

	// Log configuration (without sensitive data)
	logger.Info("configuration loaded", zap.String("config", cfg.String()))

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	// Initialize renderer and make sure every template compiles
	renderer := documents.NewRenderer(
		documents.WithWidth(cfg.PageWidth),
		documents.WithLogger(logger.Named("documents")),
	)
	if err := renderer.Check(); err != nil {
		logger.Fatal("document templates failed to compile", zap.Error(err))
	}
	logger.Info("renderer initialized", zap.Int("page_width", cfg.PageWidth))

	exporter := initExporter(cfg, logger)

	processor := worker.NewProcessor(renderer, exporter, cfg.ExportDir, logger)

	// Initialize worker
	w := worker.NewWorker(cfg, redisClient, processor, logger)

	// Start worker
	if err := w.Start(); err != nil {
		logger.Fatal("failed to start worker", zap.Error(err))
	}

	// Start health server
	healthServer := worker.NewHealthServer(cfg.HealthPort, redisClient, renderer, logger)
	if err := healthServer.Start(); err != nil {
		logger.Fatal("failed to start health server", zap.Error(err))
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("drafter worker running, press Ctrl+C to stop")
	<-sigChan

	logger.Info("shutdown signal received, stopping worker")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Stop health server
	if err := healthServer.Stop(); err != nil {
		logger.Error("failed to stop health server", zap.Error(err))
	}

	// Stop worker
	if err := w.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop worker", zap.Error(err))
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		logger.Error("failed to close redis connection", zap.Error(err))
	}

	select {
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, forcing exit")
	default:
		logger.Info("worker stopped gracefully")
	}
}

// initLogger initializes the logger
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

// initExporter returns the docx exporter, or an exporter that refuses every
// request when export is disabled or the export directory is unusable
func initExporter(cfg *config.Config, logger *zap.Logger) export.Exporter {
	if !cfg.ExportEnabled {
		logger.Warn("document export disabled (export requests will be reported as unavailable)")
		return export.Unavailable{Reason: "export is disabled"}
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		logger.Warn("export directory unusable (export requests will be reported as unavailable)",
			zap.String("dir", cfg.ExportDir),
			zap.Error(err),
		)
		return export.Unavailable{Reason: fmt.Sprintf("export directory %s is unusable", cfg.ExportDir)}
	}

	logger.Info("docx exporter initialized", zap.String("dir", cfg.ExportDir))
	return export.NewDocxExporter(logger.Named("export"))
}
