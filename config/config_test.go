package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: csv
  data_dir: /var/lib/miniclub
mirror:
  enabled: true
  spreadsheet_id: abc123
  timeout: 3s
leaderboard:
  timezone: America/Argentina/Buenos_Aires
session:
  secret: s3cret
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverCSV, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/miniclub/usuarios.csv", cfg.UsersPath())
	assert.Equal(t, "/var/lib/miniclub/scores.csv", cfg.ScoresPath())
	assert.True(t, cfg.Mirror.Enabled)
	assert.Equal(t, "abc123", cfg.Mirror.SpreadsheetID)
	assert.Equal(t, 3*time.Second, cfg.Mirror.Timeout)
	assert.Equal(t, "MiniClub_Scores", cfg.Mirror.SheetName)
	assert.Equal(t, "Scores", cfg.Mirror.Worksheet)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Leaderboard.Timezone)
	assert.Equal(t, 50, cfg.Leaderboard.Limit)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: csv\n"), 0o644))

	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/miniclub?sslmode=disable")
	t.Setenv("MIRROR_TIMEOUT", "750ms")
	t.Setenv("LEADERBOARD_LIMIT", "10")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/miniclub?sslmode=disable", cfg.Storage.DSN)
	assert.Equal(t, 750*time.Millisecond, cfg.Mirror.Timeout)
	assert.Equal(t, 10, cfg.Leaderboard.Limit)
}

func TestLoadConfig_EnvFallback(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/miniclub")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DriverCSV, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/miniclub/scores.csv", cfg.ScoresPath())
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5*time.Second, cfg.Mirror.Timeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "mongo"}},
		{name: "postgres without dsn", env: map[string]string{"STORAGE_DRIVER": "postgres"}},
		{name: "bad timeout", env: map[string]string{"MIRROR_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			assert.Error(t, err)
		})
	}
}
