// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile: got %q, want %q", cfg.DataFile, DefaultDataFile)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir: got empty, want executable directory")
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
}

func TestDataPath(t *testing.T) {
	cfg := &Config{DataDir: "/data", DataFile: "tasks.json"}
	want := filepath.Join("/data", "tasks.json")
	if got := cfg.DataPath(); got != want {
		t.Errorf("DataPath: got %q, want %q", got, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TASK_TRACKER_DIR", "/env/dir")
	t.Setenv("TASK_TRACKER_FILE", "env.json")
	t.Setenv("TASK_TRACKER_LOG_LEVEL", "debug")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "/env/dir" {
		t.Errorf("DataDir: got %q, want /env/dir", cfg.DataDir)
	}
	if cfg.DataFile != "env.json" {
		t.Errorf("DataFile: got %q, want env.json", cfg.DataFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TASK_TRACKER_DIR", "/env/dir")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-dir", "/flag/dir"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "/flag/dir" {
		t.Errorf("DataDir: got %q, want /flag/dir", cfg.DataDir)
	}
}

func TestProjectConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "data_dir = \"" + filepath.ToSlash(tmpDir) + "\"\ndata_file = \"project.json\"\nlog_level = \"warn\"\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "tasktracker.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataFile != "project.json" {
		t.Errorf("DataFile: got %q, want project.json", cfg.DataFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q, want warn", cfg.LogLevel)
	}
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "tasktracker.toml"), []byte("data_dir = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := Load(fs, nil); err == nil {
		t.Error("expected error for malformed config file, got nil")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandPath("~/tasks"); got != filepath.Join(home, "tasks") {
		t.Errorf("expandPath(~/tasks): got %q", got)
	}
	if got := expandPath("~"); got != home {
		t.Errorf("expandPath(~): got %q", got)
	}
	if got := expandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("expandPath(/abs/path): got %q", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("expandPath(empty): got %q", got)
	}
}
