package scoredb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/csvfile"
)

const (
	colFecha = iota
	colEmail
	colNombre
	colFirstHole
	colTotal = colFirstHole + sharedtypes.HoleCount
)

// CSVStore keeps the ledger in a flat CSV file
// (fecha, email, nombre_mostrar, hoyo_1..hoyo_14, total).
type CSVStore struct {
	file   *csvfile.File
	loc    *time.Location
	logger *slog.Logger
}

var _ Repository = (*CSVStore)(nil)

// NewCSVStore opens path, creating it with only a header row when absent.
// Timestamps are written as wall-clock time in loc.
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

// Append rewrites the ledger with card as its last row.
func (s *CSVStore) Append(ctx context.Context, card sharedtypes.Scorecard) error {
	err := s.file.Update(ctx, func(records []csvfile.Record) ([][]string, error) {
		rows := make([][]string, 0, len(records)+1)
		for _, rec := range records {
			rows = append(rows, rec.Fields)
		}
		return append(rows, s.encode(card)), nil
	})
	if err != nil {
		return s.wrap(fmt.Errorf("failed to append scorecard: %w", err))
	}
	return nil
}

func (s *CSVStore) List(ctx context.Context) ([]sharedtypes.Scorecard, error) {
	records, err := s.file.ReadAll(ctx)
	if err != nil {
		return nil, s.wrap(err)
	}

	cards := make([]sharedtypes.Scorecard, 0, len(records))
	for _, rec := range records {
		card, err := s.decode(rec)
		if err != nil {
			return nil, s.wrap(err)
		}
		warnOnTotalMismatch(ctx, s.logger, card, "line", rec.Line)
		cards = append(cards, card)
	}
	return cards, nil
}

func (s *CSVStore) encode(card sharedtypes.Scorecard) []string {
	row := make([]string, 0, len(CSVHeader))
	row = append(row, card.Timestamp.In(s.loc).Format(sharedtypes.TimestampLayout), card.Email, card.DisplayName)
	for _, st := range card.Strokes {
		row = append(row, strconv.Itoa(st))
	}
	return append(row, strconv.Itoa(card.Total))
}

func (s *CSVStore) decode(rec csvfile.Record) (sharedtypes.Scorecard, error) {
	f := rec.Fields
	ts, err := time.ParseInLocation(sharedtypes.TimestampLayout, f[colFecha], s.loc)
	if err != nil {
		return sharedtypes.Scorecard{}, s.file.Malformed(rec, "fecha %q: %v", f[colFecha], err)
	}

	strokes := make([]int, sharedtypes.HoleCount)
	for i := range strokes {
		v, err := strconv.Atoi(f[colFirstHole+i])
		if err != nil {
			return sharedtypes.Scorecard{}, s.file.Malformed(rec, "%s %q: not a number", CSVHeader[colFirstHole+i], f[colFirstHole+i])
		}
		strokes[i] = v
	}

	total, err := strconv.Atoi(f[colTotal])
	if err != nil {
		return sharedtypes.Scorecard{}, s.file.Malformed(rec, "total %q: not a number", f[colTotal])
	}

	return sharedtypes.Scorecard{
		Timestamp:   ts,
		Email:       f[colEmail],
		DisplayName: f[colNombre],
		Strokes:     strokes,
		Total:       total,
	}, nil
}

func (s *CSVStore) wrap(err error) error {
	if errors.Is(err, csvfile.ErrMalformed) {
		s.logger.Error("score ledger is unreadable", "path", s.file.Path(), "error", err)
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return err
}

// warnOnTotalMismatch logs rows whose stored total differs from the stroke sum.
// The stored total stays authoritative.
func warnOnTotalMismatch(ctx context.Context, logger *slog.Logger, card sharedtypes.Scorecard, where string, pos any) {
	if sum := sharedtypes.SumStrokes(card.Strokes); sum != card.Total {
		logger.WarnContext(ctx, "Stored total does not match stroke sum",
			slog.String("email", card.Email),
			slog.String("fecha", card.Timestamp.Format(sharedtypes.TimestampLayout)),
			slog.Int("total", card.Total),
			slog.Int("stroke_sum", sum),
			slog.Any(where, pos),
		)
	}
}
