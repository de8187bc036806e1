package main

import (
	"log/slog"
	"os"

	"github.com/misshanya/link-shortener/bot/internal/app"
	"github.com/misshanya/link-shortener/bot/internal/config"
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

	app.Start(cfg, logger)
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
