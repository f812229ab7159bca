package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	defaultTimeout  = 5 * time.Second
	spreadsheetMime = "application/vnd.google-apps.spreadsheet"
	userEntered     = "USER_ENTERED"
)

// SheetsConfig configures a SheetsMirror.
type SheetsConfig struct {
	CredentialsFile string
	// SpreadsheetID wins over SheetName when both are set.
	SpreadsheetID string
	SheetName     string
	Worksheet     string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int

	// ClientOptions replace credential loading when set (emulators, tests).
	ClientOptions []option.ClientOption
}

// SheetsMirror appends rows to a Google Sheets worksheet.
// Each Relay builds its own clients; no session is kept between calls.
type SheetsMirror struct {
	cfg     SheetsConfig
	limiter *rate.Limiter
	logger  *slog.Logger
}

var _ Mirror = (*SheetsMirror)(nil)

// NewSheetsMirror creates an enabled mirror.
func NewSheetsMirror(cfg SheetsConfig, logger *slog.Logger) *SheetsMirror {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &SheetsMirror{
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, cfg.Burst),
		logger:  logger,
	}
}

// Relay appends row to the worksheet. Waiting for the rate limiter counts
// against the timeout.
func (m *SheetsMirror) Relay(ctx context.Context, row []any) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	if err := m.limiter.Wait(ctx); err != nil {
		return unavailable("rate limit", err)
	}

	opts, err := m.clientOptions(ctx)
	if err != nil {
		return unavailable("credentials", err)
	}

	spreadsheetID, err := m.resolveSpreadsheetID(ctx, opts)
	if err != nil {
		return err
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return unavailable("sheets client", err)
	}

	_, err = srv.Spreadsheets.Values.Append(spreadsheetID, quoteSheet(m.cfg.Worksheet), &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption(userEntered).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return unavailable("append row", err)
	}

	m.logger.DebugContext(ctx, "Row relayed to remote mirror",
		slog.String("spreadsheet_id", spreadsheetID),
		slog.String("worksheet", m.cfg.Worksheet))
	return nil
}

func (m *SheetsMirror) clientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if len(m.cfg.ClientOptions) > 0 {
		return m.cfg.ClientOptions, nil
	}

	data, err := os.ReadFile(m.cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}
	creds, err := google.CredentialsFromJSON(ctx, data,
		sheets.SpreadsheetsScope,
		drive.DriveMetadataReadonlyScope,
	)
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}

// resolveSpreadsheetID finds the spreadsheet by title through Drive unless an id is configured.
func (m *SheetsMirror) resolveSpreadsheetID(ctx context.Context, opts []option.ClientOption) (string, error) {
	if m.cfg.SpreadsheetID != "" {
		return m.cfg.SpreadsheetID, nil
	}

	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return "", unavailable("drive client", err)
	}

	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeDriveQuery(m.cfg.SheetName), spreadsheetMime)
	list, err := srv.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", unavailable("spreadsheet lookup", err)
	}
	if len(list.Files) == 0 {
		return "", unavailable("spreadsheet lookup", fmt.Errorf("no spreadsheet named %q", m.cfg.SheetName))
	}
	return list.Files[0].Id, nil
}

var driveQueryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// escapeDriveQuery escapes a value for a single-quoted Drive query string.
func escapeDriveQuery(v string) string {
	return driveQueryEscaper.Replace(v)
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func unavailable(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMirrorUnavailable, stage, err)
}
