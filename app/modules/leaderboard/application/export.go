package leaderboardservice

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

var exportHeader = []any{"Posición", "Fecha", "Jugador", "Email", "Total"}

// ExportXLSX writes the window's ranking as a one-sheet workbook.
func (s *LeaderboardService) ExportXLSX(ctx context.Context, window leaderboarddomain.Window, w io.Writer) error {
	_, err := withTelemetry(s, ctx, "ExportXLSX", window, func(ctx context.Context) (struct{}, error) {
		rows, err := s.rank(ctx, window)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, WriteXLSX(window, rows, w)
	})
	return err
}

// WriteXLSX renders rows into a workbook whose sheet is named after the window.
func WriteXLSX(window leaderboarddomain.Window, rows []sharedtypes.LeaderboardRow, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := window.Label()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Position, r.Timestamp.Format(sharedtypes.TimestampLayout), r.DisplayName, r.Email, r.Total}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "B", "D", 24); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
