package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "PG_HOST", "PG_PORT", "PG_USER", "PG_PASSWORD", "PG_DBNAME",
		"SHEET_ID", "SHEET_TAB", "GOOGLE_CREDENTIALS_FILE",
		"WEBHOOK_SECRET_KEY", "SYNC_CRON", "SYNC_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "sales_dashboard_db", cfg.DBName)
	assert.Equal(t, "All Data", cfg.SheetTab)
	assert.Equal(t, "service-account.json", cfg.CredentialsFile)
	assert.Equal(t, 120*time.Second, cfg.SyncTimeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("SHEET_ID", "sheet-123")
	t.Setenv("SHEET_TAB", "Q3 Leads")
	t.Setenv("SYNC_TIMEOUT_SECONDS", "30")
	t.Setenv("SYNC_CRON", "@hourly")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sheet-123", cfg.SheetID)
	assert.Equal(t, "Q3 Leads", cfg.SheetTab)
	assert.Equal(t, 30*time.Second, cfg.SyncTimeout)
	assert.Equal(t, "@hourly", cfg.SyncCron)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("SYNC_TIMEOUT_SECONDS", "soon")

	assert.Equal(t, 120*time.Second, Load().SyncTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{WebhookSecret: "s", SheetID: "id", SyncTimeout: time.Minute}
	assert.NoError(t, cfg.Validate())

	missingSecret := *cfg
	missingSecret.WebhookSecret = ""
	err := missingSecret.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "WEBHOOK_SECRET_KEY")
	}

	missingSheet := *cfg
	missingSheet.SheetID = ""
	err = missingSheet.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "SHEET_ID")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "sync",
		DBPassword: "pw",
		DBName:     "sales",
	}
	assert.Equal(t,
		"host=db.internal user=sync password=pw dbname=sales port=5433 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
