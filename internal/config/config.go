package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	MongoDB   MongoDBConfig
	Sheets    SheetsConfig
	Scheduler SchedulerConfig
	Media     MediaConfig
	Session   SessionConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// BackendConfig points at the fixed external REST backend every screen talks to.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// MongoDBConfig holds settings for the session store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig configures the optional report export. Export is disabled when
// either field is empty.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// SchedulerConfig holds the day-requirement precompute schedule.
type SchedulerConfig struct {
	CronSchedule string
	Timezone     string
}

// MediaConfig caps upload sizes per capture kind, in megabytes.
type MediaConfig struct {
	MaxImageMB int64
	MaxVideoMB int64
}

// SessionConfig names the cookie the dashboard session rides on.
type SessionConfig struct {
	CookieName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	backendTimeout, err := getenvDuration("BACKEND_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	maxImageMB, err := getenvInt64("MEDIA_MAX_IMAGE_MB", 8)
	if err != nil {
		return nil, err
	}

	maxVideoMB, err := getenvInt64("MEDIA_MAX_VIDEO_MB", 64)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Backend: BackendConfig{
			BaseURL: os.Getenv("FPDA_BACKEND_URL"),
			Timeout: backendTimeout,
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "fpda"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
		},
		Scheduler: SchedulerConfig{
			CronSchedule: getenvWithDefault("DAYREQ_CRON_SCHEDULE", "0 5 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
		Media: MediaConfig{
			MaxImageMB: maxImageMB,
			MaxVideoMB: maxVideoMB,
		},
		Session: SessionConfig{
			CookieName: getenvWithDefault("SESSION_COOKIE", "fpda_session"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("FPDA_BACKEND_URL must be provided")
	}

	if c.Backend.Timeout <= 0 {
		return errors.New("BACKEND_TIMEOUT must be positive")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}

	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Scheduler.CronSchedule == "" {
		return errors.New("DAYREQ_CRON_SCHEDULE must be provided")
	}

	if c.Scheduler.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Media.MaxImageMB <= 0 || c.Media.MaxVideoMB <= 0 {
		return errors.New("media size limits must be positive")
	}

	if c.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE must be provided")
	}

	return nil
}

// ReportingEnabled reports whether the sheets export is fully configured.
func (c *Config) ReportingEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

func getenvInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return n, nil
}
