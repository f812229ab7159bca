//go:build integration

package stores

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdb "github.com/Black-And-White-Club/miniclub/app/modules/user/infrastructure/repositories"
)

func TestUserBunStore_ModifyUpsert(t *testing.T) {
	truncate(t, "usuarios")
	ctx := context.Background()
	store := userdb.NewBunStore(testDB)
	registered := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := store.Get(ctx, "ana@club.com")
	require.ErrorIs(t, err, userdb.ErrNotFound)

	created, err := store.Modify(ctx, "ana@club.com", func(current *userdb.Player) (*userdb.Player, error) {
		assert.Nil(t, current)
		return &userdb.Player{Email: "ana@club.com", Name: "Ana", RegisteredAt: registered}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.Name)

	_, err = store.Modify(ctx, "ana@club.com", func(current *userdb.Player) (*userdb.Player, error) {
		require.NotNil(t, current)
		next := *current
		next.Nickname = "Anita"
		next.RegisteredAt = registered.Add(time.Hour)
		return &next, nil
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, "ana@club.com")
	require.NoError(t, err)
	assert.Equal(t, "Anita", got.Nickname)
	assert.True(t, registered.Equal(got.RegisteredAt), "registration time is never rewritten")
}

func TestUserBunStore_ModifyAbortLeavesRowUntouched(t *testing.T) {
	truncate(t, "usuarios")
	ctx := context.Background()
	store := userdb.NewBunStore(testDB)
	abort := errors.New("abort")

	_, err := store.Modify(ctx, "beto@club.com", func(*userdb.Player) (*userdb.Player, error) {
		return nil, abort
	})
	require.ErrorIs(t, err, abort)

	players, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestUserBunStore_ConcurrentFirstRegistration(t *testing.T) {
	truncate(t, "usuarios")
	ctx := context.Background()
	store := userdb.NewBunStore(testDB)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	saved := make([]*userdb.Player, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			saved[i], errs[i] = store.Modify(ctx, "caro@club.com", func(current *userdb.Player) (*userdb.Player, error) {
				if current != nil {
					next := *current
					next.Nickname = "Caro"
					return &next, nil
				}
				return &userdb.Player{Email: "caro@club.com", RegisteredAt: time.Now().UTC().Truncate(time.Second)}, nil
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, saved[i])
		assert.Equal(t, "caro@club.com", saved[i].Email)
	}

	players, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Caro", players[0].Nickname, "callers after the first see the stored row")
}
