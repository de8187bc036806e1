package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/misshanya/link-shortener/bot/internal/config"
	"github.com/misshanya/link-shortener/bot/internal/handler"
	"github.com/misshanya/link-shortener/bot/internal/service"
	"github.com/misshanya/link-shortener/pkg/shortener"
	"github.com/misshanya/link-shortener/pkg/tracing"
)

const serviceName = "bot"

func Start(cfg *config.Config, logger *slog.Logger) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Init tracing
	tp, err := tracing.NewProvider(ctx, serviceName, cfg.Tracing.CollectorAddr)
	if err != nil {
		logger.Error("failed to init tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("failed to flush spans", slog.Any("error", err))
		}
	}()

	// Client for the external shortening service
	client := shortener.New(cfg.Shortener.URL)

	// Init service
	svc := service.New(client, cfg.Bot.PublicHost, logger, tp.Tracer(serviceName))

	// Init handler
	botHandler := handler.New(logger, svc)

	// Configure bot
	opts := []bot.Option{
		bot.WithDefaultHandler(botHandler.Default),
	}

	b, err := bot.New(cfg.Bot.Token, opts...)
	if err != nil {
		logger.Error("failed to create bot", slog.Any("error", err))
		return
	}

	// Start bot
	logger.Info("starting bot", slog.String("shortener", cfg.Shortener.URL))
	b.Start(ctx)
	logger.Info("bot stopped")
}
