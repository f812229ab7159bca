package leaderboardservice

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

// ChartPalette holds the colors of a rendered chart.
type ChartPalette struct {
	Background  drawing.Color
	PrimaryLine drawing.Color
	AccentLine  drawing.Color
	TextColor   drawing.Color
}

// DefaultPalette is a light green-on-white scheme.
var DefaultPalette = ChartPalette{
	Background:  drawing.ColorWhite,
	PrimaryLine: drawing.Color{R: 34, G: 110, B: 64, A: 255},
	AccentLine:  drawing.Color{R: 214, G: 162, B: 38, A: 255},
	TextColor:   drawing.Color{R: 40, G: 40, B: 40, A: 255},
}

// PlayerHistoryChart renders a PNG of the player's totals over time.
func (s *LeaderboardService) PlayerHistoryChart(ctx context.Context, email string) ([]byte, error) {
	return withTelemetry(s, ctx, "PlayerHistoryChart", leaderboarddomain.WindowAll, func(ctx context.Context) ([]byte, error) {
		cards, err := s.ledger.All(ctx)
		if err != nil {
			return nil, err
		}

		email = strings.ToLower(strings.TrimSpace(email))
		var history []sharedtypes.Scorecard
		for _, c := range cards {
			if strings.EqualFold(c.Email, email) {
				history = append(history, c)
			}
		}
		return GeneratePlayerHistoryChart(history, s.palette)
	})
}

// GeneratePlayerHistoryChart produces a PNG line chart of a player's totals.
// Fewer than two distinct rounds render a placeholder.
func GeneratePlayerHistoryChart(history []sharedtypes.Scorecard, palette ChartPalette) ([]byte, error) {
	history = slices.Clone(history)
	slices.SortStableFunc(history, func(a, b sharedtypes.Scorecard) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	if len(history) < 2 || history[0].Timestamp.Equal(history[len(history)-1].Timestamp) {
		return renderNoDataPlaceholder(palette)
	}

	xValues := make([]time.Time, len(history))
	yValues := make([]float64, len(history))
	minTotal, maxTotal := history[0].Total, history[0].Total
	for i, c := range history {
		xValues[i] = c.Timestamp
		yValues[i] = float64(c.Total)
		minTotal = min(minTotal, c.Total)
		maxTotal = max(maxTotal, c.Total)
	}

	mainSeries := chart.TimeSeries{
		Name:    "Total",
		XValues: xValues,
		YValues: yValues,
		Style: chart.Style{
			StrokeColor: palette.PrimaryLine,
			StrokeWidth: 2,
			DotWidth:    4,
			DotColor:    palette.AccentLine,
		},
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Fecha",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Golpes",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			// Fewer strokes is better, so the best round sits at the top.
			Range: &chart.ContinuousRange{
				Min:        float64(minTotal - 2),
				Max:        float64(maxTotal + 2),
				Descending: true,
			},
		},
		Series: []chart.Series{mainSeries},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "Todavía no hay suficientes rondas"
	)

	// go-chart refuses to render without a visible series, so draw a flat
	// line in the background color behind the message.
	blank := chart.ContinuousSeries{
		XValues: []float64{0, 1},
		YValues: []float64{0, 1},
		Style: chart.Style{
			StrokeColor: palette.Background,
		},
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis:  chart.YAxis{Style: chart.Hidden()},
		Series: []chart.Series{blank},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
