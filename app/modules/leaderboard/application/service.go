package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/clock"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "leaderboard"

// LeaderboardService implements the Service interface.
type LeaderboardService struct {
	ledger  Ledger
	logger  *slog.Logger
	metrics observability.Metrics
	tracer  trace.Tracer
	clock   clock.Clock
	limit   int
	palette ChartPalette
}

var _ Service = (*LeaderboardService)(nil)

// NewLeaderboardService creates a new LeaderboardService. limit <= 0 means the default of 50 rows.
func NewLeaderboardService(
	ledger Ledger,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	clk clock.Clock,
	limit int,
) *LeaderboardService {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &LeaderboardService{
		ledger:  ledger,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		clock:   clk,
		limit:   limit,
		palette: DefaultPalette,
	}
}

// withTelemetry wraps a read operation with tracing, metrics, and panic recovery.
// Every failure here is an infrastructure error; rankings have no domain failures.
func withTelemetry[T any](
	s *LeaderboardService,
	ctx context.Context,
	operationName string,
	window leaderboarddomain.Window,
	op func(ctx context.Context) (T, error),
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("window", string(window)),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				observability.CorrelationAttr(ctx),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			span.RecordError(err)
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			observability.CorrelationAttr(ctx),
			slog.String("operation", operationName),
			slog.String("window", string(window)),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
	return result, nil
}

// GetLeaderboard reads the whole ledger and ranks it for window.
// An empty window yields an empty slice.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, window leaderboarddomain.Window) ([]sharedtypes.LeaderboardRow, error) {
	return withTelemetry(s, ctx, "GetLeaderboard", window, func(ctx context.Context) ([]sharedtypes.LeaderboardRow, error) {
		return s.rank(ctx, window)
	})
}

func (s *LeaderboardService) rank(ctx context.Context, window leaderboarddomain.Window) ([]sharedtypes.LeaderboardRow, error) {
	cards, err := s.ledger.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}
	rows := leaderboarddomain.RankN(window, cards, s.clock.Now(), s.limit)
	s.logger.DebugContext(ctx, "Leaderboard ranked",
		slog.String("window", string(window)),
		slog.Int("cards", len(cards)),
		slog.Int("rows", len(rows)),
	)
	return rows, nil
}
