package leaderboardhandlers

import (
	"context"
	"io"

	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

type FakeService struct {
	trace []string

	GetLeaderboardFunc     func(ctx context.Context, window leaderboarddomain.Window) ([]sharedtypes.LeaderboardRow, error)
	ExportXLSXFunc         func(ctx context.Context, window leaderboarddomain.Window, w io.Writer) error
	PlayerHistoryChartFunc func(ctx context.Context, email string) ([]byte, error)
}

func (f *FakeService) Trace() []string { return f.trace }

func (f *FakeService) GetLeaderboard(ctx context.Context, window leaderboarddomain.Window) ([]sharedtypes.LeaderboardRow, error) {
	f.trace = append(f.trace, "GetLeaderboard:"+string(window))
	if f.GetLeaderboardFunc != nil {
		return f.GetLeaderboardFunc(ctx, window)
	}
	return nil, nil
}

func (f *FakeService) ExportXLSX(ctx context.Context, window leaderboarddomain.Window, w io.Writer) error {
	f.trace = append(f.trace, "ExportXLSX:"+string(window))
	if f.ExportXLSXFunc != nil {
		return f.ExportXLSXFunc(ctx, window, w)
	}
	_, err := w.Write([]byte("PK"))
	return err
}

func (f *FakeService) PlayerHistoryChart(ctx context.Context, email string) ([]byte, error) {
	f.trace = append(f.trace, "PlayerHistoryChart:"+email)
	if f.PlayerHistoryChartFunc != nil {
		return f.PlayerHistoryChartFunc(ctx, email)
	}
	return []byte("\x89PNG"), nil
}
