package leaderboarddomain

import (
	"cmp"
	"slices"
	"time"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// DefaultLimit caps a ranking's length.
const DefaultLimit = 50

// Rank filters cards to the window, orders them by total ascending and numbers
// them 1..n, keeping at most DefaultLimit rows. Equal totals keep ledger order
// and still get distinct consecutive positions. cards is not modified.
func Rank(window Window, cards []sharedtypes.Scorecard, now time.Time) []sharedtypes.LeaderboardRow {
	return RankN(window, cards, now, DefaultLimit)
}

// RankN is Rank with an explicit row limit. A limit <= 0 means DefaultLimit.
func RankN(window Window, cards []sharedtypes.Scorecard, now time.Time, limit int) []sharedtypes.LeaderboardRow {
	if limit <= 0 {
		limit = DefaultLimit
	}

	filtered := make([]sharedtypes.Scorecard, 0, len(cards))
	for _, c := range cards {
		if window.Contains(c.Timestamp, now) {
			filtered = append(filtered, c)
		}
	}

	slices.SortStableFunc(filtered, func(a, b sharedtypes.Scorecard) int {
		return cmp.Compare(a.Total, b.Total)
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	rows := make([]sharedtypes.LeaderboardRow, len(filtered))
	for i, c := range filtered {
		rows[i] = sharedtypes.LeaderboardRow{
			Position:    i + 1,
			Timestamp:   c.Timestamp,
			DisplayName: c.DisplayName,
			Email:       c.Email,
			Total:       c.Total,
		}
	}
	return rows
}
