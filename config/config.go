// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	World       string
	Start       string
	Environment string
	LogLevel    slog.Level
	LogFile     string
}

// Load reads AVENTURA_* variables, falling back to defaults.
func Load() *Config {
	return &Config{
		World:       getEnv("AVENTURA_WORLD", ""),
		Start:       getEnv("AVENTURA_START", ""),
		Environment: getEnv("AVENTURA_ENV", "development"),
		LogLevel:    parseLogLevel(getEnv("AVENTURA_LOG_LEVEL", "warn")),
		LogFile:     getEnv("AVENTURA_LOG_FILE", ""),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
