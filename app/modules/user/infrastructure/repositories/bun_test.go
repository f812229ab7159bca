package userdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/miniclub/internal/db/bundb"
)

func newTestBunStore(t *testing.T) (*BunStore, *bun.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := bundb.Open(ctx, bundb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, bundb.Migrate(ctx, db, testLogger))
	return NewBunStore(db), db
}

func TestBunStore_Modify(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestBunStore(t)
	registered := time.Date(2025, 3, 1, 18, 30, 5, 0, time.UTC)

	_, err := store.Modify(ctx, "ana@club.com", func(current *Player) (*Player, error) {
		assert.Nil(t, current)
		return &Player{Email: "ana@club.com", Name: "Ana", RegisteredAt: registered}, nil
	})
	require.NoError(t, err)

	_, err = store.Modify(ctx, "ana@club.com", func(current *Player) (*Player, error) {
		require.NotNil(t, current)
		next := *current
		next.Name = "Ana María"
		next.Nickname = "Anita"
		return &next, nil
	})
	require.NoError(t, err)

	players, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Ana María", players[0].Name)
	assert.Equal(t, "Anita", players[0].Nickname)
	assert.True(t, registered.Equal(players[0].RegisteredAt))
}

func TestBunStore_ModifyAbortRollsBack(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestBunStore(t)

	boom := errors.New("rejected")
	_, err := store.Modify(ctx, "x@y.com", func(*Player) (*Player, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, err = store.Get(ctx, "x@y.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
