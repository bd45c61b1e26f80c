package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultMaxLength is the largest note, in characters, accepted by the edit form.
const DefaultMaxLength = 10000

// NotesConfig holds note storage settings.
type NotesConfig struct {
	Dir string
	// MaxLength caps submitted content in characters. Zero or less disables the cap.
	MaxLength int
}

// ServerConfig holds HTTP server timeouts.
type ServerConfig struct {
	ReadTimeoutSec     int
	WriteTimeoutSec    int
	ShutdownTimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost        string
	AppScheme      string
	Port           string
	Timezone       string
	LogLevel       string
	MetricsEnabled bool
	SwaggerEnabled bool
	Server         ServerConfig
	Notes          NotesConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		AppScheme:      getEnv("APP_SCHEME", "http"),
		Port:           getEnv("PORT", "8080"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
		Server: ServerConfig{
			ReadTimeoutSec:     getEnvInt("SERVER_READ_TIMEOUT_SEC", 10),
			WriteTimeoutSec:    getEnvInt("SERVER_WRITE_TIMEOUT_SEC", 10),
			ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		},
		Notes: NotesConfig{
			Dir:       getEnv("NOTES_DIR", "notes"),
			MaxLength: getEnvInt("NOTES_MAX_LENGTH", DefaultMaxLength),
		},
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
