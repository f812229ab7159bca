package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS usuarios (
				email TEXT PRIMARY KEY,
				nombre TEXT NOT NULL DEFAULT '',
				nickname TEXT NOT NULL DEFAULT '',
				fecha_registro TIMESTAMP NOT NULL
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create usuarios table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS usuarios;`)
		if err != nil {
			return fmt.Errorf("failed to drop usuarios table: %w", err)
		}
		return nil
	})
}
