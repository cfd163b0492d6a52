package config

import "path/filepath"

// Default values.
const (
	DefaultDataFile  = "tasks.json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tasktracker.
type Config struct {
	// DataDir is the directory holding the data file. Defaults to the
	// directory of the running executable.
	DataDir string `toml:"data_dir"`

	// DataFile is the data file name inside DataDir.
	DataFile string `toml:"data_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// DataPath returns the full path of the JSON data file.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, c.DataFile)
}
