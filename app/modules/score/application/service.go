package scoreservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/mirror"
	scoredb "github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/miniclub/internal/clock"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
	"github.com/Black-And-White-Club/miniclub/internal/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "score"

// ScoreService implements the Service interface.
type ScoreService struct {
	repo    scoredb.Repository
	mirror  mirror.Mirror
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
	clock   clock.Clock
}

var _ Service = (*ScoreService)(nil)

// NewScoreService creates a new ScoreService. A nil mirror means mirror.Disabled.
func NewScoreService(
	repo scoredb.Repository,
	m mirror.Mirror,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	clk clock.Clock,
) *ScoreService {
	if m == nil {
		m = mirror.Disabled{}
	}
	if clk == nil {
		clk = clock.New(nil)
	}
	return &ScoreService{
		repo:    repo,
		mirror:  m,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		clock:   clk,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *ScoreService,
	ctx context.Context,
	operationName string,
	email string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("email", email),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		slog.String("operation", operationName),
		slog.String("email", email),
		observability.CorrelationAttr(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("email", email),
				observability.CorrelationAttr(ctx),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.String("email", email),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.String("email", email),
			slog.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.InfoContext(ctx, operationName+" completed successfully",
			slog.String("operation", operationName),
			slog.String("email", email),
			observability.CorrelationAttr(ctx),
		)
		s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
	}

	return result, nil
}

func unwrap[S any](result results.OperationResult[S, error], err error) (*S, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if result.IsFailure() {
		return nil, *result.Failure
	}
	return result.Success, nil
}
