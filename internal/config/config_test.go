package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Plan form defaults
	if cfg.Defaults.Distance != "5k" {
		t.Errorf("Defaults.Distance = %q, want %q", cfg.Defaults.Distance, "5k")
	}
	if cfg.Defaults.CurrentPace != "6:00" {
		t.Errorf("Defaults.CurrentPace = %q, want %q", cfg.Defaults.CurrentPace, "6:00")
	}
	if cfg.Defaults.TargetPace != "5:30" {
		t.Errorf("Defaults.TargetPace = %q, want %q", cfg.Defaults.TargetPace, "5:30")
	}
	if cfg.Defaults.TrainingDays != 5 {
		t.Errorf("Defaults.TrainingDays = %d, want 5", cfg.Defaults.TrainingDays)
	}

	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if !cfg.HistoryEnabled() {
		t.Error("history should be enabled by default")
	}
	if cfg.History.Limit != 20 {
		t.Errorf("History.Limit = %d, want 20", cfg.History.Limit)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name        string
		modify      func(c *Config)
		expectError bool
		errContains string
	}{
		{
			name:        "valid config",
			modify:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "unknown distance",
			modify:      func(c *Config) { c.Defaults.Distance = "ultra" },
			expectError: true,
			errContains: "defaults.distance",
		},
		{
			name:        "bad current pace",
			modify:      func(c *Config) { c.Defaults.CurrentPace = "quick" },
			expectError: true,
			errContains: "defaults.current_pace",
		},
		{
			name:        "bad target pace",
			modify:      func(c *Config) { c.Defaults.TargetPace = "" },
			expectError: true,
			errContains: "defaults.target_pace",
		},
		{
			name:        "too few training days",
			modify:      func(c *Config) { c.Defaults.TrainingDays = 2 },
			expectError: true,
			errContains: "training_days",
		},
		{
			name:        "too many training days",
			modify:      func(c *Config) { c.Defaults.TrainingDays = 7 },
			expectError: true,
			errContains: "training_days",
		},
		{
			name:        "miles display",
			modify:      func(c *Config) { c.Display.DistanceUnit = "mi" },
			expectError: false,
		},
		{
			name:        "unknown unit",
			modify:      func(c *Config) { c.Display.DistanceUnit = "furlongs" },
			expectError: true,
			errContains: "distance_unit",
		},
		{
			name:        "negative history limit",
			modify:      func(c *Config) { c.History.Limit = -1 },
			expectError: true,
			errContains: "history.limit",
		},
		{
			name:        "unknown log level",
			modify:      func(c *Config) { c.Log.Level = "chatty" },
			expectError: true,
			errContains: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"defaults": {"distance": "half", "training_days": 4}, "history": {"enabled": false}}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Defaults.Distance != "half" {
		t.Errorf("Defaults.Distance = %q, want half", cfg.Defaults.Distance)
	}
	if cfg.Defaults.TrainingDays != 4 {
		t.Errorf("Defaults.TrainingDays = %d, want 4", cfg.Defaults.TrainingDays)
	}
	if cfg.Defaults.CurrentPace != "6:00" {
		t.Errorf("Defaults.CurrentPace = %q, want default 6:00", cfg.Defaults.CurrentPace)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should stay disabled when set to false")
	}
	if cfg.History.Limit != 20 {
		t.Errorf("History.Limit = %d, want default 20", cfg.History.Limit)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("LoadFile() error = %v, want ErrNoConfig", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("LoadFile() error = %v, want parse error", err)
	}
}

func TestCreateExampleAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("example config should validate, got %v", err)
	}

	// A second call must not overwrite user edits
	cfg.Defaults.Distance = "full"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}
	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Defaults.Distance != "full" {
		t.Errorf("Defaults.Distance = %q after CreateExample, want full", reloaded.Defaults.Distance)
	}
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = "/tmp/custom.log"
	if got, err := cfg.LogPath(); err != nil || got != "/tmp/custom.log" {
		t.Errorf("LogPath() = %q, %v, want /tmp/custom.log", got, err)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg.Log.File = ""
	got, err := cfg.LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if want := filepath.Join(home, ".runner", "runner.log"); got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}
