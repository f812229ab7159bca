package bundb

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mongo", "")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, Migrate(ctx, db, logger))
	// Second run finds nothing to apply.
	require.NoError(t, Migrate(ctx, db, logger))

	for _, table := range []string{"usuarios", "scores"} {
		var n int
		err := db.NewSelect().TableExpr(table).ColumnExpr("count(*)").Scan(ctx, &n)
		require.NoError(t, err, table)
		assert.Zero(t, n, table)
	}
}
