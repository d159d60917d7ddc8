// Package config reads ftracker settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	DBPath          string
	HTTPAddress     string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, falling back to defaults
// suitable for running the binary from the current directory.
func Load() Config {
	return Config{
		DBPath:          getEnv("FTRACKER_DB_PATH", "ftracker.db"),
		HTTPAddress:     getEnv("FTRACKER_HTTP_ADDRESS", ":8222"),
		LogLevel:        getLevelEnv("FTRACKER_LOG_LEVEL", slog.LevelInfo),
		ShutdownTimeout: getDurationEnv("FTRACKER_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getLevelEnv(key string, fallback slog.Level) slog.Level {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(value))); err != nil {
		return fallback
	}
	return level
}
