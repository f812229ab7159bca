package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/Black-And-White-Club/miniclub"

// Config selects log format and verbosity.
type Config struct {
	Environment string
	LogLevel    string
}

// Observability bundles the logger, tracer and metrics handed to every module.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Metrics  Metrics
	Registry *prometheus.Registry
}

// New builds production observability: JSON logs (text in development), the global
// otel tracer and a fresh Prometheus registry.
func New(cfg Config) *Observability {
	logger := NewLogger(os.Stdout, cfg)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Observability{
		Logger:   logger,
		Tracer:   otel.Tracer(instrumentationName),
		Metrics:  NewPrometheusMetrics(registry),
		Registry: registry,
	}
}

// NewNoop returns observability that discards everything. Used by tests and CLI one-shots.
func NewNoop() *Observability {
	return &Observability{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:  noop.NewTracerProvider().Tracer("noop"),
		Metrics: NewNoopMetrics(),
	}
}

// NewLogger creates the slog logger for the given environment.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.Environment == "development" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With(slog.String("env", cfg.Environment))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
