package config

import (
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from environment variables.
// Values that fail to parse are ignored.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOBOARD_COLUMNS"); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Columns = i
		}
	}
	if v := os.Getenv("TODOBOARD_ALT_SCREEN"); v != "" {
		cfg.AltScreen = boolFromString(v)
	}
	if v := os.Getenv("TODOBOARD_ID_FORMAT"); v != "" {
		cfg.IDFormat = v
	}

	// Logging configuration
	if v, ok := os.LookupEnv("TODOBOARD_LOG_DIR"); ok {
		cfg.LogDir = v
	}
	if v := os.Getenv("TODOBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODOBOARD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODOBOARD_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("TODOBOARD_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
