package service

import (
	"context"
	"log/slog"

	"github.com/misshanya/link-shortener/pkg/form"
	"github.com/misshanya/link-shortener/pkg/shortener"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type shortenerClient interface {
	Shorten(ctx context.Context, req shortener.Request) (*shortener.Response, error)
}

type Service struct {
	client     shortenerClient
	publicHost string
	l          *slog.Logger
	t          trace.Tracer
}

func New(client shortenerClient, publicHost string, logger *slog.Logger, t trace.Tracer) *Service {
	return &Service{client: client, publicHost: publicHost, l: logger, t: t}
}

// ShortenURL submits a fresh form. Errors are *form.ValidationError or *form.RequestError.
func (s *Service) ShortenURL(ctx context.Context, longURL, customShort string) (*form.Result, error) {
	ctx, span := s.t.Start(ctx, "Shorten URL from chat")
	defer span.End()

	f := form.New(s.client, s.publicHost)
	f.SetLongURL(longURL)
	f.SetCustomShort(customShort)

	result, err := f.Submit(ctx)
	if err != nil {
		s.l.Error("failed to shorten url", slog.String("url", longURL), slog.Any("error", err))
		span.SetStatus(codes.Error, form.Message(err))
		return nil, err
	}

	s.l.Info("shortened url", slog.String("url", longURL), slog.String("short", result.ShortURL))
	return result, nil
}
