package scoredb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Black-And-White-Club/miniclub/internal/db/bundb"
)

func TestBunStore_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	db, err := bundb.Open(ctx, bundb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, bundb.Migrate(ctx, db, testLogger))

	store := NewBunStore(db, time.UTC, testLogger)
	ts := time.Date(2025, 3, 1, 18, 30, 5, 0, time.UTC)

	// Later timestamp first: order must follow insertion, not fecha.
	require.NoError(t, store.Append(ctx, testCard("beto@club.com", ts.Add(time.Hour), fourteenThrees...)))
	require.NoError(t, store.Append(ctx, testCard("ana@club.com", ts, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)))

	cards, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "beto@club.com", cards[0].Email)
	assert.Equal(t, "ana@club.com", cards[1].Email)
	assert.Equal(t, 14, cards[1].Total)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, cards[1].Strokes)
	assert.True(t, ts.Equal(cards[1].Timestamp))
	assert.Equal(t, time.UTC, cards[1].Timestamp.Location())
}
