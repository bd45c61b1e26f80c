package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("NOTES_DIR", "/var/lib/hashnotes")
	t.Setenv("NOTES_MAX_LENGTH", "0")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "3")

	cfg := Load()

	assert.Equal(t, "/var/lib/hashnotes", cfg.Notes.Dir)
	assert.Equal(t, 0, cfg.Notes.MaxLength)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSec)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_HOST", "APP_SCHEME", "NOTES_DIR", "NOTES_MAX_LENGTH", "APP_TIMEZONE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:8080", cfg.AppHost)
	assert.Equal(t, "http", cfg.AppScheme)
	assert.Equal(t, "notes", cfg.Notes.Dir)
	assert.Equal(t, DefaultMaxLength, cfg.Notes.MaxLength)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.Timezone = "UTC"
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
