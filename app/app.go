package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/miniclub/app/modules/auth"
	"github.com/Black-And-White-Club/miniclub/app/modules/leaderboard"
	"github.com/Black-And-White-Club/miniclub/app/modules/score"
	scoredb "github.com/Black-And-White-Club/miniclub/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/miniclub/app/modules/user"
	userdb "github.com/Black-And-White-Club/miniclub/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/miniclub/config"
	"github.com/Black-And-White-Club/miniclub/internal/clock"
	"github.com/Black-And-White-Club/miniclub/internal/db/bundb"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// App holds the modules and the stores behind them.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	Clock         clock.Clock
	DB            *bun.DB

	UserModule        *user.Module
	ScoreModule       *score.Module
	LeaderboardModule *leaderboard.Module
	AuthModule        *auth.Module
}

// NewApp opens the configured storage backend and wires every module over it.
func NewApp(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*App, error) {
	logger := obs.Logger

	loc, err := clock.LoadLocation(cfg.Leaderboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid leaderboard timezone %q: %w", cfg.Leaderboard.Timezone, err)
	}
	clk := clock.New(loc)

	app := &App{
		Config:        cfg,
		Observability: obs,
		Clock:         clk,
	}

	userRepo, scoreRepo, err := app.openStores(ctx, loc, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.UserModule = user.NewModule(ctx, obs, userRepo, clk)
	app.ScoreModule = score.NewModule(ctx, cfg, obs, scoreRepo, app.UserModule.GetService(), clk)
	app.LeaderboardModule = leaderboard.NewModule(ctx, cfg, obs, app.ScoreModule.GetService(), clk)

	app.AuthModule, err = auth.NewModule(ctx, cfg, obs, app.UserModule.GetService())
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize auth module: %w", err)
	}

	logger.InfoContext(ctx, "Application initialized",
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("timezone", loc.String()),
		slog.Bool("mirror_enabled", cfg.Mirror.Enabled),
	)
	return app, nil
}

func (app *App) openStores(ctx context.Context, loc *time.Location, logger *slog.Logger) (userdb.Repository, scoredb.Repository, error) {
	cfg := app.Config
	switch cfg.Storage.Driver {
	case config.DriverCSV:
		users, err := userdb.NewCSVStore(ctx, cfg.UsersPath(), loc, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open player file: %w", err)
		}
		scores, err := scoredb.NewCSVStore(ctx, cfg.ScoresPath(), loc, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open score file: %w", err)
		}
		return users, scores, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := bundb.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.DB = db

		// An embedded database has no separate deploy step to run migrations in.
		if cfg.Storage.Driver == config.DriverSQLite {
			if err := bundb.Migrate(ctx, db, logger); err != nil {
				return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		return userdb.NewBunStore(db), scoredb.NewBunStore(db, loc, logger), nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Close releases the database connection, if any.
func (app *App) Close() error {
	if app.DB == nil {
		return nil
	}
	if err := app.DB.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
