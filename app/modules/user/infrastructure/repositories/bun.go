package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// BunStore keeps players in the usuarios table.
type BunStore struct {
	db bun.IDB
}

var _ Repository = (*BunStore)(nil)

// NewBunStore creates a store on db. The schema comes from the usermigrations package.
func NewBunStore(db bun.IDB) *BunStore {
	return &BunStore{db: db}
}

func (s *BunStore) Get(ctx context.Context, email string) (*Player, error) {
	return getPlayer(ctx, s.db, email, false)
}

func (s *BunStore) List(ctx context.Context) ([]*Player, error) {
	var players []*Player
	err := s.db.NewSelect().
		Model(&players).
		Order("fecha_registro ASC", "email ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// Modify locks the player's row while fn runs. A first registration that loses an
// insert race to a concurrent caller re-reads the winner's row and applies fn to it.
func (s *BunStore) Modify(ctx context.Context, email string, fn ModifyFunc) (*Player, error) {
	var saved *Player
	err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for attempt := 0; attempt < 2; attempt++ {
			current, err := getPlayer(ctx, tx, email, true)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return err
			}

			next, err := fn(current)
			if err != nil {
				return err
			}

			if current != nil {
				if _, err := tx.NewUpdate().
					Model(next).
					Column("nombre", "nickname").
					WherePK().
					Exec(ctx); err != nil {
					return fmt.Errorf("failed to update player: %w", err)
				}
				saved = next
				return nil
			}

			res, err := tx.NewInsert().
				Model(next).
				On("CONFLICT (email) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to insert player: %w", err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return fmt.Errorf("failed to insert player: %w", err)
			} else if n == 1 {
				saved = next
				return nil
			}
		}
		return fmt.Errorf("failed to insert player %s: concurrent registration did not become visible", email)
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func getPlayer(ctx context.Context, db bun.IDB, email string, forUpdate bool) (*Player, error) {
	player := new(Player)
	q := db.NewSelect().Model(player).Where("email = ?", email)
	if forUpdate && db.Dialect().Name() == dialect.PG {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}
