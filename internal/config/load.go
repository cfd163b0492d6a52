package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.tasktracker/tasktracker.toml or OS-specific config dir)
// 3. Project config file (tasktracker.toml or .tasktracker.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	finalizeConfig(cfg)

	return cfg, nil
}

// setDefaults fills in the built-in defaults.
func setDefaults(cfg *Config) {
	cfg.DataDir = executableDir()
	cfg.DataFile = DefaultDataFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// parseFlags registers config flags on fs and parses args.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.DataDir, "dir", cfg.DataDir, "Directory holding the data file")
	fs.StringVar(&cfg.DataFile, "file", cfg.DataFile, "Data file name inside the data directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|logfmt|json)")
	return fs.Parse(args)
}

// finalizeConfig expands paths and fills fallbacks.
func finalizeConfig(cfg *Config) {
	cfg.DataDir = expandPath(cfg.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = executableDir()
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
}

// findUserConfigFile looks for a user-level config file.
func findUserConfigFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".tasktracker", "tasktracker.toml")
		if fileExists(p) {
			return p
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(configDir, "tasktracker", "tasktracker.toml")
		if fileExists(p) {
			return p
		}
	}
	return ""
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	for _, name := range []string{"tasktracker.toml", ".tasktracker.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// executableDir returns the directory of the running executable,
// falling back to the current directory.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
