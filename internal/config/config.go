package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs at construction time. It is
// passed explicitly to the components that need it; there is no package-level
// configuration state.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SheetID         string
	SheetTab        string
	CredentialsFile string

	WebhookSecret string

	// SyncCron enables periodic syncs when set to a cron expression.
	SyncCron string

	// SyncTimeout bounds one pipeline run's fetch and write I/O.
	SyncTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "5000"),
		DBHost:          getEnv("PG_HOST", "localhost"),
		DBPort:          getEnv("PG_PORT", "5432"),
		DBUser:          getEnv("PG_USER", "postgres"),
		DBPassword:      os.Getenv("PG_PASSWORD"),
		DBName:          getEnv("PG_DBNAME", "sales_dashboard_db"),
		SheetID:         os.Getenv("SHEET_ID"),
		SheetTab:        getEnv("SHEET_TAB", "All Data"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "service-account.json"),
		WebhookSecret:   os.Getenv("WEBHOOK_SECRET_KEY"),
		SyncCron:        os.Getenv("SYNC_CRON"),
		SyncTimeout:     time.Duration(getEnvInt("SYNC_TIMEOUT_SECONDS", 120)) * time.Second,
	}
}

// Validate fails fast on settings the service cannot run without.
func (c *Config) Validate() error {
	if c.WebhookSecret == "" {
		return fmt.Errorf("WEBHOOK_SECRET_KEY is required")
	}
	if c.SheetID == "" {
		return fmt.Errorf("SHEET_ID is required")
	}
	if c.SyncTimeout <= 0 {
		return fmt.Errorf("SYNC_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// DSN builds the Postgres connection string for the destination database.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
