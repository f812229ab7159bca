package scoreservice

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/mirror"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
	"github.com/Black-And-White-Club/miniclub/internal/results"
)

// ValidateStrokes checks the hole count and every stroke's range.
func ValidateStrokes(strokes []int) error {
	if len(strokes) != sharedtypes.HoleCount {
		return fmt.Errorf("%w: expected %d strokes, got %d", ErrInvalidScorecard, sharedtypes.HoleCount, len(strokes))
	}
	for i, st := range strokes {
		if st < sharedtypes.MinStrokes || st > sharedtypes.MaxStrokes {
			return fmt.Errorf("%w: hole %d has %d strokes, want %d-%d",
				ErrInvalidScorecard, i+1, st, sharedtypes.MinStrokes, sharedtypes.MaxStrokes)
		}
	}
	return nil
}

// Append records a scorecard. Only a local write failure fails the call.
func (s *ScoreService) Append(ctx context.Context, email, displayName string, strokes []int) (*sharedtypes.Scorecard, error) {
	result, err := withTelemetry(s, ctx, "Append", email, func(ctx context.Context) (results.OperationResult[sharedtypes.Scorecard, error], error) {
		if err := ValidateStrokes(strokes); err != nil {
			return results.FailureResult[sharedtypes.Scorecard, error](err), nil
		}

		card := sharedtypes.Scorecard{
			Timestamp:   s.clock.Now().Truncate(time.Second),
			Email:       email,
			DisplayName: displayName,
			Strokes:     slices.Clone(strokes),
			Total:       sharedtypes.SumStrokes(strokes),
		}

		if err := s.repo.Append(ctx, card); err != nil {
			return results.OperationResult[sharedtypes.Scorecard, error]{}, err
		}
		return results.SuccessResult[sharedtypes.Scorecard, error](card), nil
	})
	card, err := unwrap(result, err)
	if err != nil {
		return nil, err
	}

	// The card is durable from here on; nothing the mirror does may fail the call.
	s.relay(ctx, *card)
	return card, nil
}

// relay pushes the stored card to the mirror. Failures are logged and dropped.
func (s *ScoreService) relay(ctx context.Context, card sharedtypes.Scorecard) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.RecordMirrorRelay(ctx, observability.MirrorOutcomeFailure)
			s.logger.ErrorContext(ctx, "Panic while mirroring scorecard",
				slog.String("email", card.Email),
				slog.String("fecha", card.Timestamp.Format(sharedtypes.TimestampLayout)),
				observability.CorrelationAttr(ctx),
				slog.Any("panic", r),
			)
		}
	}()

	if mirror.IsDisabled(s.mirror) {
		s.metrics.RecordMirrorRelay(ctx, observability.MirrorOutcomeDisabled)
		return
	}

	if err := s.mirror.Relay(ctx, card.Row()); err != nil {
		s.metrics.RecordMirrorRelay(ctx, observability.MirrorOutcomeFailure)
		s.logger.WarnContext(ctx, "Scorecard saved locally but not mirrored",
			slog.String("email", card.Email),
			slog.String("fecha", card.Timestamp.Format(sharedtypes.TimestampLayout)),
			observability.CorrelationAttr(ctx),
			slog.Any("error", err),
		)
		return
	}
	s.metrics.RecordMirrorRelay(ctx, observability.MirrorOutcomeSuccess)
}

// All returns the full ledger in append order.
func (s *ScoreService) All(ctx context.Context) ([]sharedtypes.Scorecard, error) {
	result, err := withTelemetry(s, ctx, "All", "", func(ctx context.Context) (results.OperationResult[[]sharedtypes.Scorecard, error], error) {
		cards, err := s.repo.List(ctx)
		if err != nil {
			return results.OperationResult[[]sharedtypes.Scorecard, error]{}, err
		}
		return results.SuccessResult[[]sharedtypes.Scorecard, error](cards), nil
	})
	cards, err := unwrap(result, err)
	if err != nil {
		return nil, err
	}
	return *cards, nil
}
