package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/misshanya/link-shortener/pkg/form"
	"github.com/misshanya/link-shortener/pkg/shortener"
	"github.com/misshanya/link-shortener/web/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type shortenerClient interface {
	Shorten(ctx context.Context, req shortener.Request) (*shortener.Response, error)
}

type metricsProvider interface {
	Submitted(outcome string)
}

type Service struct {
	client     shortenerClient
	publicHost string

	m metricsProvider
	l *slog.Logger
	t trace.Tracer
}

func NewService(client shortenerClient, publicHost string, m metricsProvider, l *slog.Logger, t trace.Tracer) *Service {
	return &Service{
		client:     client,
		publicHost: publicHost,

		m: m,
		l: l,
		t: t,
	}
}

// Submit runs one submission of a fresh form and returns its final state.
// origin is used for short links when no public host is configured.
func (s *Service) Submit(ctx context.Context, origin, longURL, customShort string) (form.State, error) {
	ctx, span := s.t.Start(ctx, "Submit shorten form")
	defer span.End()

	host := s.publicHost
	if host == "" {
		host = origin
	}

	f := form.New(s.client, host)
	f.SetLongURL(longURL)
	f.SetCustomShort(customShort)

	result, err := f.Submit(ctx)

	var validationErr *form.ValidationError
	switch {
	case errors.As(err, &validationErr):
		s.m.Submitted(metrics.OutcomeValidationError)
		s.l.Debug("rejected form input", slog.String("url", longURL), slog.String("reason", validationErr.Message))
	case err != nil:
		s.m.Submitted(metrics.OutcomeRequestError)
		s.l.Error("failed to shorten url", slog.String("url", longURL), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, form.Message(err))
	default:
		s.m.Submitted(metrics.OutcomeSuccess)
		s.l.Info("shortened url",
			slog.String("url", longURL),
			slog.String("code", result.Response.Short),
		)
		span.SetAttributes(attribute.String("short.code", result.Response.Short))
	}

	return f.State(), err
}
