package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	Session    SessionConfig
	Clipboard  ClipboardConfig
	Preference PreferenceConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig controls how long idle calculator sessions are kept.
type SessionConfig struct {
	IdleTimeout   time.Duration
	SweepSchedule string
}

// ClipboardConfig controls whether copy writes to the host clipboard.
type ClipboardConfig struct {
	Enabled bool
}

// PreferenceConfig holds defaults for presentation preferences.
type PreferenceConfig struct {
	DefaultTheme string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	idleTimeout, err := time.ParseDuration(getEnv("SESSION_IDLE_TIMEOUT", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_IDLE_TIMEOUT: %w", err)
	}
	if idleTimeout <= 0 {
		return nil, fmt.Errorf("invalid SESSION_IDLE_TIMEOUT: must be positive")
	}

	clipboardEnabled, err := strconv.ParseBool(getEnv("CLIPBOARD_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLIPBOARD_ENABLED: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/vat_calculator.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Session: SessionConfig{
			IdleTimeout:   idleTimeout,
			SweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		},
		Clipboard: ClipboardConfig{
			Enabled: clipboardEnabled,
		},
		Preference: PreferenceConfig{
			DefaultTheme: getEnv("DEFAULT_THEME", "light"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
