package leaderboardservice

import (
	"context"
	"io"

	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// Ledger is the read side of the score ledger.
type Ledger interface {
	All(ctx context.Context) ([]sharedtypes.Scorecard, error)
}

// Service renders rankings over the score ledger. It owns no state.
type Service interface {
	GetLeaderboard(ctx context.Context, window leaderboarddomain.Window) ([]sharedtypes.LeaderboardRow, error)
	ExportXLSX(ctx context.Context, window leaderboarddomain.Window, w io.Writer) error
	PlayerHistoryChart(ctx context.Context, email string) ([]byte, error)
}
