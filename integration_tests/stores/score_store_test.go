//go:build integration

package stores

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	scoredb "github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/repositories"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

func card(email string, ts time.Time, strokes ...int) sharedtypes.Scorecard {
	return sharedtypes.Scorecard{
		Timestamp:   ts,
		Email:       email,
		DisplayName: email,
		Strokes:     strokes,
		Total:       sharedtypes.SumStrokes(strokes),
	}
}

func TestScoreBunStore_ListKeepsAppendOrder(t *testing.T) {
	truncate(t, "scores")
	ctx := context.Background()
	store := scoredb.NewBunStore(testDB, time.UTC, observability.NewNoop().Logger)
	ts := time.Date(2025, 3, 1, 18, 30, 5, 0, time.UTC)

	want := []sharedtypes.Scorecard{
		card("beto@club.com", ts.Add(time.Hour), 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
		card("ana@club.com", ts, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14),
	}
	for _, c := range want {
		require.NoError(t, store.Append(ctx, c))
	}

	got, err := store.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}
