package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/misshanya/link-shortener/pkg/shortener"
	"github.com/misshanya/link-shortener/pkg/tracing"
	"github.com/misshanya/link-shortener/web/internal/config"
	"github.com/misshanya/link-shortener/web/internal/metrics"
	"github.com/misshanya/link-shortener/web/internal/service"
	handler "github.com/misshanya/link-shortener/web/internal/transport/http"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "web"

type App struct {
	cfg *config.Config
	l   *slog.Logger
	tp  *sdktrace.TracerProvider
	e   *echo.Echo
}

func New(ctx context.Context, cfg *config.Config, l *slog.Logger) (*App, error) {
	a := &App{
		cfg: cfg,
		l:   l,
	}

	// Init tracing
	tp, err := tracing.NewProvider(ctx, serviceName, cfg.Tracing.CollectorAddr)
	if err != nil {
		return nil, err
	}
	a.tp = tp

	// Client for the external shortening service
	client := shortener.New(cfg.Shortener.URL)

	// Init metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Init service
	svc := service.NewService(client, cfg.Server.PublicHost, m, l, tp.Tracer(serviceName))

	// Init handler
	shortenerHandler := handler.NewHandler(svc)

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}

	// Init Echo
	a.e = echo.New()
	a.e.HideBanner = true
	a.e.Renderer = renderer

	// CORS
	a.e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// Logger
	a.e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.Any("error", v.Error))
				l.LogAttrs(c.Request().Context(), slog.LevelError, "request failed", attrs...)
				return nil
			}
			l.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))

	// Recoverer
	a.e.Use(middleware.Recover())

	// Tracing and metrics
	a.e.Use(otelecho.Middleware(serviceName, otelecho.WithTracerProvider(tp)))
	a.e.Use(echoprometheus.NewMiddleware(serviceName))

	// Connect handlers to the routes
	a.e.GET("/", shortenerHandler.Index)
	a.e.POST("/", shortenerHandler.Submit)
	a.e.POST("/api/shorten", shortenerHandler.ShortenURL)
	a.e.GET("/metrics", echoprometheus.NewHandler())

	return a, nil
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.e
}

func (a *App) Start(ctx context.Context, errChan chan<- error) {
	a.l.Info("starting server",
		slog.String("addr", a.cfg.Server.Addr),
		slog.String("shortener", a.cfg.Shortener.URL),
	)
	if err := a.e.Start(a.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- err
	}
}

func (a *App) Stop(ctx context.Context) error {
	a.l.Info("[!] Shutting down...")

	var stopErr error

	// Stop http server
	a.l.Info("Stopping http server...")
	if err := a.e.Shutdown(ctx); err != nil {
		stopErr = errors.Join(stopErr, err)
	}

	// Flush spans
	if err := a.tp.Shutdown(ctx); err != nil {
		stopErr = errors.Join(stopErr, err)
	}

	if stopErr != nil {
		return stopErr
	}

	a.l.Info("Stopped gracefully")
	return nil
}
