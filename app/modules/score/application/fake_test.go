package scoreservice

import (
	"context"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// ------------------------
// Fake Score Repo
// ------------------------

// FakeScoreRepository is an in-memory scoredb.Repository with programmable overrides.
type FakeScoreRepository struct {
	trace []string
	cards []sharedtypes.Scorecard

	AppendFunc func(ctx context.Context, card sharedtypes.Scorecard) error
	ListFunc   func(ctx context.Context) ([]sharedtypes.Scorecard, error)
}

// NewFakeScoreRepository initializes a new FakeScoreRepository with an empty trace.
func NewFakeScoreRepository() *FakeScoreRepository {
	return &FakeScoreRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScoreRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoreRepository) Append(ctx context.Context, card sharedtypes.Scorecard) error {
	f.record("Append")
	if f.AppendFunc != nil {
		return f.AppendFunc(ctx, card)
	}
	f.cards = append(f.cards, card)
	return nil
}

func (f *FakeScoreRepository) List(ctx context.Context) ([]sharedtypes.Scorecard, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	out := make([]sharedtypes.Scorecard, len(f.cards))
	copy(out, f.cards)
	return out, nil
}

// ------------------------
// Fake Mirror
// ------------------------

// FakeMirror records relayed rows and optionally fails.
type FakeMirror struct {
	Rows      [][]any
	RelayFunc func(ctx context.Context, row []any) error
}

func (m *FakeMirror) Relay(ctx context.Context, row []any) error {
	m.Rows = append(m.Rows, row)
	if m.RelayFunc != nil {
		return m.RelayFunc(ctx, row)
	}
	return nil
}
