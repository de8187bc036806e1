package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/misshanya/link-shortener/web/internal/app"
	"github.com/misshanya/link-shortener/web/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

func main() {
	logger := setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Error("failed to read config", slog.Any("error", err))
		os.Exit(1)
	}

	// Create app
	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to create app", slog.Any("error", err))
		os.Exit(1)
	}

	// Create ctx for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	errChan := make(chan error)
	go a.Start(ctx, errChan)

	// Read from channels
	// Exit with error OR gracefully shut down
	select {
	case err := <-errChan:
		logger.Error("failed to start server", slog.Any("error", err))
		os.Exit(1)
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Stop(ctx); err != nil {
			logger.Error("failed to stop server", slog.Any("error", err))
			os.Exit(1)
		}
	}
}

func setupLogger() *slog.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)

	z, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return slog.New(zapslog.NewHandler(z.Core(), zapslog.WithCaller(true)))
}
