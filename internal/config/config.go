package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"runner/internal/plan"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `json:"defaults"`
	Display  DisplayConfig  `json:"display"`
	History  HistoryConfig  `json:"history"`
	Log      LogConfig      `json:"log"`
}

// DefaultsConfig holds the values the plan form starts with
type DefaultsConfig struct {
	Distance     string `json:"distance"`
	CurrentPace  string `json:"current_pace"`
	TargetPace   string `json:"target_pace"`
	TrainingDays int    `json:"training_days"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
}

// HistoryConfig controls the saved-plans database
type HistoryConfig struct {
	Enabled *bool `json:"enabled,omitempty"`
	Limit   int   `json:"limit"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	enabled := true
	return Config{
		Defaults: DefaultsConfig{
			Distance:     string(plan.Race5K),
			CurrentPace:  "6:00",
			TargetPace:   "5:30",
			TrainingDays: 5,
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
		},
		History: HistoryConfig{
			Enabled: &enabled,
			Limit:   20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// HistoryEnabled reports whether generated plans are saved
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// Load reads the configuration from ~/.runner/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills in values missing from the file
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Defaults.Distance == "" {
		c.Defaults.Distance = defaults.Defaults.Distance
	}
	if c.Defaults.CurrentPace == "" {
		c.Defaults.CurrentPace = defaults.Defaults.CurrentPace
	}
	if c.Defaults.TargetPace == "" {
		c.Defaults.TargetPace = defaults.Defaults.TargetPace
	}
	if c.Defaults.TrainingDays == 0 {
		c.Defaults.TrainingDays = defaults.Defaults.TrainingDays
	}
	if c.Display.DistanceUnit == "" {
		c.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if c.History.Enabled == nil {
		c.History.Enabled = defaults.History.Enabled
	}
	if c.History.Limit == 0 {
		c.History.Limit = defaults.History.Limit
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Save writes the configuration to ~/.runner/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks that configured defaults can actually produce a plan
func (c *Config) Validate() error {
	if _, err := plan.ParseDistance(c.Defaults.Distance); err != nil {
		return fmt.Errorf("defaults.distance must be one of 5k, 10k, half, full: %w", err)
	}
	if _, err := plan.ParsePace(c.Defaults.CurrentPace); err != nil {
		return fmt.Errorf("defaults.current_pace must look like \"6:00\": %w", err)
	}
	if _, err := plan.ParsePace(c.Defaults.TargetPace); err != nil {
		return fmt.Errorf("defaults.target_pace must look like \"5:30\": %w", err)
	}
	if c.Defaults.TrainingDays < plan.MinTrainingDays || c.Defaults.TrainingDays > plan.MaxTrainingDays {
		return fmt.Errorf("defaults.training_days must be between %d and %d, got %d",
			plan.MinTrainingDays, plan.MaxTrainingDays, c.Defaults.TrainingDays)
	}

	// Validate display units
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}

	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit)
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	return nil
}

// LogPath returns the configured log file, defaulting to ~/.runner/runner.log
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "runner.log"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".runner"), nil
}
