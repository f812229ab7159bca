package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Black-And-White-Club/miniclub/internal/observability"
)

// Storage drivers.
const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config struct to hold the configuration settings
type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	Mirror        MirrorConfig        `yaml:"mirror"`
	Leaderboard   LeaderboardConfig   `yaml:"leaderboard"`
	HTTP          HTTPConfig          `yaml:"http"`
	Session       SessionConfig       `yaml:"session"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// StorageConfig selects the local authoritative store.
type StorageConfig struct {
	Driver     string `yaml:"driver"` // csv|sqlite|postgres
	DataDir    string `yaml:"data_dir"`
	UsersFile  string `yaml:"users_file"`
	ScoresFile string `yaml:"scores_file"`
	DSN        string `yaml:"dsn"` // sqlite path or postgres URL
}

// MirrorConfig holds the remote spreadsheet mirror settings.
type MirrorConfig struct {
	Enabled         bool          `yaml:"enabled"`
	CredentialsFile string        `yaml:"credentials_file"`
	SpreadsheetID   string        `yaml:"spreadsheet_id"`
	SheetName       string        `yaml:"sheet_name"`
	Worksheet       string        `yaml:"worksheet"`
	Timeout         time.Duration `yaml:"timeout"`
	RatePerSecond   float64       `yaml:"rate_per_second"`
	Burst           int           `yaml:"burst"`
}

// LeaderboardConfig holds ranking settings.
type LeaderboardConfig struct {
	Timezone string `yaml:"timezone"`
	Limit    int    `yaml:"limit"`
}

// HTTPConfig holds the API listener settings.
type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RatePerSecond  float64  `yaml:"rate_per_second"`
	Burst          int      `yaml:"burst"`
}

// SessionConfig holds the session token settings.
type SessionConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("USERS_FILE"); v != "" {
		cfg.Storage.UsersFile = v
	}
	if v := os.Getenv("SCORES_FILE"); v != "" {
		cfg.Storage.ScoresFile = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("MIRROR_ENABLED"); v != "" {
		cfg.Mirror.Enabled = v == "true"
	}
	if v := os.Getenv("GOOGLE_CREDS_FILE"); v != "" {
		cfg.Mirror.CredentialsFile = v
	}
	if v := os.Getenv("GOOGLE_SPREADSHEET_ID"); v != "" {
		cfg.Mirror.SpreadsheetID = v
	}
	if v := os.Getenv("GOOGLE_SHEET_NAME"); v != "" {
		cfg.Mirror.SheetName = v
	}
	if v := os.Getenv("GOOGLE_WORKSHEET"); v != "" {
		cfg.Mirror.Worksheet = v
	}
	if v := os.Getenv("MIRROR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid MIRROR_TIMEOUT value: %v", err)
		}
		cfg.Mirror.Timeout = d
	}
	if v := os.Getenv("LEADERBOARD_TIMEZONE"); v != "" {
		cfg.Leaderboard.Timezone = v
	}
	if v := os.Getenv("LEADERBOARD_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LEADERBOARD_LIMIT value: %v", err)
		}
		cfg.Leaderboard.Limit = n
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL value: %v", err)
		}
		cfg.Session.TTL = d
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverCSV
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "."
	}
	if c.Storage.UsersFile == "" {
		c.Storage.UsersFile = "usuarios.csv"
	}
	if c.Storage.ScoresFile == "" {
		c.Storage.ScoresFile = "scores.csv"
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.DSN == "" {
		c.Storage.DSN = "file:" + filepath.Join(c.Storage.DataDir, "miniclub.db") + "?_pragma=busy_timeout(5000)"
	}
	if c.Mirror.CredentialsFile == "" {
		c.Mirror.CredentialsFile = "service_account.json"
	}
	if c.Mirror.SheetName == "" {
		c.Mirror.SheetName = "MiniClub_Scores"
	}
	if c.Mirror.Worksheet == "" {
		c.Mirror.Worksheet = "Scores"
	}
	if c.Mirror.Timeout <= 0 {
		c.Mirror.Timeout = 5 * time.Second
	}
	if c.Mirror.RatePerSecond <= 0 {
		c.Mirror.RatePerSecond = 1
	}
	if c.Mirror.Burst <= 0 {
		c.Mirror.Burst = 5
	}
	if c.Leaderboard.Limit <= 0 {
		c.Leaderboard.Limit = 50
	}
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.RatePerSecond <= 0 {
		c.HTTP.RatePerSecond = 5
	}
	if c.HTTP.Burst <= 0 {
		c.HTTP.Burst = 10
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 12 * time.Hour
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = "production"
	}
}

// Validate rejects configurations the application cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverCSV, DriverSQLite:
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn (DATABASE_URL) is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// UsersPath is the full path of the player CSV file.
func (c *Config) UsersPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.UsersFile)
}

// ScoresPath is the full path of the scorecard CSV file.
func (c *Config) ScoresPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.ScoresFile)
}

// ToObsConfig maps the observability section onto the observability package.
func ToObsConfig(appCfg *Config) observability.Config {
	return observability.Config{
		Environment: appCfg.Observability.Environment,
		LogLevel:    appCfg.Observability.LogLevel,
	}
}
