package scorehandlers

import (
	"context"

	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

type FakeScoreService struct {
	trace []string

	AppendFunc func(ctx context.Context, email, displayName string, strokes []int) (*sharedtypes.Scorecard, error)
	AllFunc    func(ctx context.Context) ([]sharedtypes.Scorecard, error)
}

func (f *FakeScoreService) Trace() []string { return f.trace }

func (f *FakeScoreService) Append(ctx context.Context, email, displayName string, strokes []int) (*sharedtypes.Scorecard, error) {
	f.trace = append(f.trace, "Append")
	if f.AppendFunc != nil {
		return f.AppendFunc(ctx, email, displayName, strokes)
	}
	return &sharedtypes.Scorecard{Email: email, DisplayName: displayName, Strokes: strokes, Total: sharedtypes.SumStrokes(strokes)}, nil
}

func (f *FakeScoreService) All(ctx context.Context) ([]sharedtypes.Scorecard, error) {
	f.trace = append(f.trace, "All")
	if f.AllFunc != nil {
		return f.AllFunc(ctx)
	}
	return nil, nil
}

type FakeUserService struct {
	trace []string

	LookupFunc func(ctx context.Context, email string) (*sharedtypes.PlayerProfile, error)
}

func (f *FakeUserService) Trace() []string { return f.trace }

func (f *FakeUserService) ResolveOrCreate(ctx context.Context, email, name, nickname string) (*sharedtypes.PlayerProfile, error) {
	f.trace = append(f.trace, "ResolveOrCreate")
	return &sharedtypes.PlayerProfile{Email: email, Name: name, Nickname: nickname}, nil
}

func (f *FakeUserService) Lookup(ctx context.Context, email string) (*sharedtypes.PlayerProfile, error) {
	f.trace = append(f.trace, "Lookup")
	if f.LookupFunc != nil {
		return f.LookupFunc(ctx, email)
	}
	return &sharedtypes.PlayerProfile{Email: email}, nil
}
