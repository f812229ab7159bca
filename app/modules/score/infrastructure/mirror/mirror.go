// Package mirror relays ledger rows to a remote spreadsheet on a best-effort basis.
//
// The mirror is either enabled (SheetsMirror) or Disabled; the choice is made once
// by FromConfig and callers only see the Mirror interface.
package mirror

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/Black-And-White-Club/miniclub/config"
)

// Mirror appends one flat row (timestamp, email, display name, hole 1..14, total)
// to the remote sheet.
type Mirror interface {
	Relay(ctx context.Context, row []any) error
}

// Disabled is the mirror used when nothing is configured. Relay never fails.
type Disabled struct{}

func (Disabled) Relay(context.Context, []any) error { return nil }

// IsDisabled reports whether m is the no-op mirror.
func IsDisabled(m Mirror) bool {
	_, ok := m.(Disabled)
	return ok
}

// FromConfig picks the mirror variant. A mirror that is switched on but lacks its
// credentials file degrades to Disabled with a warning instead of failing startup.
func FromConfig(cfg config.MirrorConfig, logger *slog.Logger) Mirror {
	if !cfg.Enabled {
		logger.Info("Remote mirror disabled")
		return Disabled{}
	}
	if _, err := os.Stat(cfg.CredentialsFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Remote mirror credentials unreadable, mirror disabled",
				slog.String("credentials_file", cfg.CredentialsFile),
				slog.Any("error", err))
		} else {
			logger.Warn("Remote mirror credentials not found, mirror disabled",
				slog.String("credentials_file", cfg.CredentialsFile))
		}
		return Disabled{}
	}

	return NewSheetsMirror(SheetsConfig{
		CredentialsFile: cfg.CredentialsFile,
		SpreadsheetID:   cfg.SpreadsheetID,
		SheetName:       cfg.SheetName,
		Worksheet:       cfg.Worksheet,
		Timeout:         cfg.Timeout,
		RatePerSecond:   cfg.RatePerSecond,
		Burst:           cfg.Burst,
	}, logger)
}
