package config

import "os"

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASK_TRACKER_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASK_TRACKER_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASK_TRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASK_TRACKER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASK_TRACKER_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

func boolFromString(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	}
	return false
}
