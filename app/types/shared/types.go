package sharedtypes

import (
	"time"
)

const (
	// HoleCount is the number of holes on the course; every scorecard has exactly this many strokes.
	HoleCount = 14
	// MinStrokes and MaxStrokes bound a single hole's stroke count.
	MinStrokes = 1
	MaxStrokes = 20

	// TimestampLayout is the wall-clock format used for every persisted timestamp.
	TimestampLayout = "2006-01-02 15:04:05"
)

// PlayerProfile is a registered player, keyed by normalized email.
type PlayerProfile struct {
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Nickname     string    `json:"nickname,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Scorecard is one submitted round. Immutable once appended to the ledger.
type Scorecard struct {
	Timestamp   time.Time `json:"timestamp"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Strokes     []int     `json:"strokes"`
	Total       int       `json:"total"`
}

// Row flattens the card in ledger column order:
// timestamp, email, display name, hole 1..14, total.
func (c Scorecard) Row() []any {
	row := make([]any, 0, 4+len(c.Strokes))
	row = append(row, c.Timestamp.Format(TimestampLayout), c.Email, c.DisplayName)
	for _, s := range c.Strokes {
		row = append(row, s)
	}
	return append(row, c.Total)
}

// LeaderboardRow is a ranked projection of a Scorecard.
type LeaderboardRow struct {
	Position    int       `json:"position"`
	Timestamp   time.Time `json:"timestamp"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Total       int       `json:"total"`
}

// SumStrokes adds up per-hole strokes.
func SumStrokes(strokes []int) int {
	total := 0
	for _, s := range strokes {
		total += s
	}
	return total
}
