package scoremigrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		id := "id BIGSERIAL PRIMARY KEY"
		if db.Dialect().Name() == dialect.SQLite {
			id = "id INTEGER PRIMARY KEY AUTOINCREMENT"
		}

		holes := make([]string, 0, 14)
		for i := 1; i <= 14; i++ {
			holes = append(holes, fmt.Sprintf("hoyo_%d INTEGER NOT NULL", i))
		}

		_, err := db.ExecContext(ctx, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS scores (
				%s,
				fecha TIMESTAMP NOT NULL,
				email TEXT NOT NULL,
				nombre_mostrar TEXT NOT NULL,
				%s,
				total INTEGER NOT NULL
			);
		`, id, strings.Join(holes, ",\n\t\t\t\t")))
		if err != nil {
			return fmt.Errorf("failed to create scores table: %w", err)
		}

		if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_scores_fecha ON scores (fecha);`); err != nil {
			return fmt.Errorf("failed to create scores fecha index: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS scores;`)
		if err != nil {
			return fmt.Errorf("failed to drop scores table: %w", err)
		}
		return nil
	})
}
