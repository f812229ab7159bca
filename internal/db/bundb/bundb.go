package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	_ "modernc.org/sqlite"

	scoremigrations "github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/miniclub/app/modules/user/infrastructure/repositories/migrations"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ModuleOrder is the order migrations are applied in.
var ModuleOrder = []string{"user", "score"}

// Open connects to the database behind dsn and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*bun.DB, error) {
	var db *bun.DB
	switch driver {
	case DriverPostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(sqldb, pgdialect.New())
	case DriverSQLite:
		sqldb, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// sqlite has a single writer; one connection also keeps :memory: databases alive.
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrators returns one migrator per module, each with its own bookkeeping tables.
func Migrators(db *bun.DB) map[string]*migrate.Migrator {
	return map[string]*migrate.Migrator{
		"user": migrate.NewMigrator(db, usermigrations.Migrations,
			migrate.WithTableName("bun_migrations_user"),
			migrate.WithLocksTableName("bun_migration_locks_user"),
		),
		"score": migrate.NewMigrator(db, scoremigrations.Migrations,
			migrate.WithTableName("bun_migrations_score"),
			migrate.WithLocksTableName("bun_migration_locks_score"),
		),
	}
}

// Migrate initializes and applies every module's pending migrations.
func Migrate(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	migrators := Migrators(db)
	for _, name := range ModuleOrder {
		migrator := migrators[name]
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", name, err)
		}
		group, err := migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("run %s migrations: %w", name, err)
		}
		if group.IsZero() {
			logger.DebugContext(ctx, "No new migrations", "module", name)
		} else {
			logger.InfoContext(ctx, "Migrated module", "module", name, "group", group.String())
		}
	}
	return nil
}
