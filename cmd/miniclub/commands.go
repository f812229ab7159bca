package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/Black-And-White-Club/miniclub/app"
	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	userservice "github.com/Black-And-White-Club/miniclub/app/modules/user/application"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
	"github.com/Black-And-White-Club/miniclub/config"
	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// loadApp builds the application for a one-shot command. Logs go to stderr
// so command output stays pipeable.
func loadApp(c *cli.Context) (*app.App, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	obs := observability.NewNoop()
	obs.Logger = observability.NewLogger(os.Stderr, config.ToObsConfig(cfg))
	return app.NewApp(c.Context, cfg, obs)
}

func windowFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "window",
		Aliases: []string{"w"},
		Value:   string(leaderboarddomain.WindowAll),
		Usage:   "all, today, 7d or 30d",
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Action: func(c *cli.Context) error {
			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a, err := app.NewApp(ctx, cfg, observability.New(config.ToObsConfig(cfg)))
			if err != nil {
				return err
			}
			return a.Start(ctx)
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "register a player or update their names",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "nickname"},
		},
		Action: func(c *cli.Context) error {
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.UserModule.GetService().ResolveOrCreate(c.Context, c.String("email"), c.String("name"), c.String("nickname"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s registered as %q\n", p.Email, userservice.DisplayName(p))
			return nil
		},
	}
}

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:      "submit",
		Usage:     "record a scorecard for a registered player",
		ArgsUsage: "<14 comma-separated strokes>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
		},
		Action: func(c *cli.Context) error {
			strokes, err := parseStrokes(c.Args().First())
			if err != nil {
				return err
			}

			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.UserModule.GetService().Lookup(c.Context, c.String("email"))
			if err != nil {
				return err
			}
			card, err := a.ScoreModule.GetService().Append(c.Context, p.Email, userservice.DisplayName(p), strokes)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s: %s scored %d\n", card.Timestamp.Format(sharedtypes.TimestampLayout), card.DisplayName, card.Total)
			return nil
		},
	}
}

func rankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "print the leaderboard",
		Flags: []cli.Flag{windowFlag()},
		Action: func(c *cli.Context) error {
			window, err := leaderboarddomain.ParseWindow(c.String("window"))
			if err != nil {
				return err
			}
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.Close()

			rows, err := a.LeaderboardModule.GetService().GetLeaderboard(c.Context, window)
			if err != nil {
				return err
			}
			return printRanking(c.App.Writer, window, rows)
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the leaderboard as an XLSX workbook",
		Flags: []cli.Flag{
			windowFlag(),
			&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			window, err := leaderboarddomain.ParseWindow(c.String("window"))
			if err != nil {
				return err
			}
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.Close()

			return writeFile(c.Context, c.Path("out"), func(ctx context.Context, w io.Writer) error {
				return a.LeaderboardModule.GetService().ExportXLSX(ctx, window, w)
			})
		},
	}
}

func chartCommand() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "render a player's score history as PNG",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.Close()

			png, err := a.LeaderboardModule.GetService().PlayerHistoryChart(c.Context, c.String("email"))
			if err != nil {
				return err
			}
			return os.WriteFile(c.Path("out"), png, 0o644)
		},
	}
}

func parseStrokes(arg string) ([]int, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, fmt.Errorf("expected %d comma-separated strokes", sharedtypes.HoleCount)
	}
	parts := strings.Split(arg, ",")
	strokes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", i+1, err)
		}
		strokes[i] = n
	}
	return strokes, nil
}

func printRanking(w io.Writer, window leaderboarddomain.Window, rows []sharedtypes.LeaderboardRow) error {
	fmt.Fprintf(w, "%s\n", window.Label())
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "Sin resultados")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tFecha\tJugador\tTotal")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", r.Position, r.Timestamp.Format(sharedtypes.TimestampLayout), r.DisplayName, r.Total)
	}
	return tw.Flush()
}

func writeFile(ctx context.Context, path string, fn func(context.Context, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(ctx, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
