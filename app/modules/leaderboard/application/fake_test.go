package leaderboardservice

import (
	"context"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// FakeLedger is a programmable Ledger.
type FakeLedger struct {
	Cards   []sharedtypes.Scorecard
	AllFunc func(ctx context.Context) ([]sharedtypes.Scorecard, error)
	calls   int
}

func (f *FakeLedger) All(ctx context.Context) ([]sharedtypes.Scorecard, error) {
	f.calls++
	if f.AllFunc != nil {
		return f.AllFunc(ctx)
	}
	return f.Cards, nil
}
