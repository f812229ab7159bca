package scoredb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/uptrace/bun"
)

// BunStore keeps the ledger in the scores table; the autoincrement id is the append order.
type BunStore struct {
	db     bun.IDB
	loc    *time.Location
	logger *slog.Logger
}

var _ Repository = (*BunStore)(nil)

// NewBunStore creates a store on db. Timestamps are returned in loc.
func NewBunStore(db bun.IDB, loc *time.Location, logger *slog.Logger) *BunStore {
	if loc == nil {
		loc = time.Local
	}
	return &BunStore{db: db, loc: loc, logger: logger}
}

func (s *BunStore) Append(ctx context.Context, card sharedtypes.Scorecard) error {
	row := FromDomain(card)
	if _, err := s.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert scorecard: %w", err)
	}
	return nil
}

func (s *BunStore) List(ctx context.Context) ([]sharedtypes.Scorecard, error) {
	var rows []Scorecard
	if err := s.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list scorecards: %w", err)
	}

	cards := make([]sharedtypes.Scorecard, 0, len(rows))
	for i := range rows {
		card := rows[i].ToDomain()
		card.Timestamp = card.Timestamp.In(s.loc)
		warnOnTotalMismatch(ctx, s.logger, card, "id", rows[i].ID)
		cards = append(cards, card)
	}
	return cards, nil
}
