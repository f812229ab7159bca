package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leaderboarddomain "github.com/Black-And-White-Club/miniclub/app/modules/leaderboard/domain"
	sharedtypes "github.com/Black-And-White-Club/miniclub/app/types/shared"
)

func TestParseStrokes(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    []int
		wantErr bool
	}{
		{name: "spaced", arg: "3, 4,5", want: []int{3, 4, 5}},
		{name: "empty", arg: " ", wantErr: true},
		{name: "not a number", arg: "3,x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStrokes(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRanking(&buf, leaderboarddomain.WindowToday, nil))
	assert.Equal(t, "Hoy\nSin resultados\n", buf.String())

	buf.Reset()
	rows := []sharedtypes.LeaderboardRow{
		{Position: 1, Timestamp: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), DisplayName: "Beto", Total: 28},
	}
	require.NoError(t, printRanking(&buf, leaderboarddomain.WindowAll, rows))
	assert.Contains(t, buf.String(), "Histórico\n")
	assert.Contains(t, buf.String(), "2025-03-15 10:00:00  Beto")
}
