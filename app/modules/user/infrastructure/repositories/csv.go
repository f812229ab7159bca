package userdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/csvfile"
)

// CSVStore keeps players in a flat CSV file (email, nombre, nickname, fecha_registro).
type CSVStore struct {
	file   *csvfile.File
	loc    *time.Location
	logger *slog.Logger
}

var _ Repository = (*CSVStore)(nil)

// NewCSVStore opens path, creating it with only a header row when absent.
// Timestamps are read and written as wall-clock time in loc.
func NewCSVStore(ctx context.Context, path string, loc *time.Location, logger *slog.Logger) (*CSVStore, error) {
	f, err := csvfile.Open(ctx, path, CSVHeader)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}
	return &CSVStore{file: f, loc: loc, logger: logger}, nil
}

func (s *CSVStore) Get(ctx context.Context, email string) (*Player, error) {
	players, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *CSVStore) List(ctx context.Context) ([]*Player, error) {
	records, err := s.file.ReadAll(ctx)
	if err != nil {
		return nil, s.wrap(err)
	}
	return s.decode(records)
}

func (s *CSVStore) Modify(ctx context.Context, email string, fn ModifyFunc) (*Player, error) {
	var saved *Player
	err := s.file.Update(ctx, func(records []csvfile.Record) ([][]string, error) {
		players, err := s.decode(records)
		if err != nil {
			return nil, err
		}

		idx := -1
		var current *Player
		for i, p := range players {
			if p.Email == email {
				idx, current = i, p
				break
			}
		}

		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		if idx >= 0 {
			players[idx] = next
		} else {
			players = append(players, next)
		}
		saved = next

		rows := make([][]string, 0, len(players))
		for _, p := range players {
			rows = append(rows, s.encode(p))
		}
		return rows, nil
	})
	if err != nil {
		return nil, s.wrap(err)
	}
	return saved, nil
}

func (s *CSVStore) decode(records []csvfile.Record) ([]*Player, error) {
	players := make([]*Player, 0, len(records))
	for _, rec := range records {
		registered, err := time.ParseInLocation(sharedtypes.TimestampLayout, rec.Fields[3], s.loc)
		if err != nil {
			return nil, s.file.Malformed(rec, "fecha_registro %q: %v", rec.Fields[3], err)
		}
		players = append(players, &Player{
			Email:        rec.Fields[0],
			Name:         rec.Fields[1],
			Nickname:     rec.Fields[2],
			RegisteredAt: registered,
		})
	}
	return players, nil
}

func (s *CSVStore) encode(p *Player) []string {
	return []string{p.Email, p.Name, p.Nickname, p.RegisteredAt.In(s.loc).Format(sharedtypes.TimestampLayout)}
}

func (s *CSVStore) wrap(err error) error {
	if errors.Is(err, csvfile.ErrMalformed) {
		s.logger.Error("player store is unreadable", "path", s.file.Path(), "error", err)
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return err
}
