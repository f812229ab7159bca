package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Mirror relay outcomes.
const (
	MirrorOutcomeSuccess  = "success"
	MirrorOutcomeFailure  = "failure"
	MirrorOutcomeDisabled = "disabled"
)

// Metrics records service operation telemetry.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, d time.Duration)
	RecordMirrorRelay(ctx context.Context, outcome string)
}

type prometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	relays    *prometheus.CounterVec
}

// NewPrometheusMetrics registers the miniclub collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) Metrics {
	m := &prometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miniclub",
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, []string{"service", "operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miniclub",
			Name:      "operation_success_total",
			Help:      "Service operations that completed without infrastructure error.",
		}, []string{"service", "operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miniclub",
			Name:      "operation_failures_total",
			Help:      "Service operations that failed with an infrastructure error or panic.",
		}, []string{"service", "operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "miniclub",
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		relays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miniclub",
			Name:      "mirror_relay_total",
			Help:      "Scorecard rows relayed to the remote mirror, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.duration, m.relays)
	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(service, operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.successes.WithLabelValues(service, operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(service, operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, d time.Duration) {
	m.duration.WithLabelValues(service, operation).Observe(d.Seconds())
}

func (m *prometheusMetrics) RecordMirrorRelay(_ context.Context, outcome string) {
	m.relays.WithLabelValues(outcome).Inc()
}

type noopMetrics struct{}

// NewNoopMetrics returns a Metrics that records nothing.
func NewNoopMetrics() Metrics { return noopMetrics{} }

func (noopMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (noopMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (noopMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (noopMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (noopMetrics) RecordMirrorRelay(context.Context, string)                              {}
