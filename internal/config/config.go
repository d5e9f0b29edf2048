package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ftracker/internal/workout"
)

// Output modes
const (
	OutputPlain = "plain"
	OutputTUI   = "tui"
)

// Config represents the application configuration
type Config struct {
	Display  DisplayConfig     `json:"display"`
	Packages []workout.Package `json:"packages,omitempty"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Output    string `json:"output"`
	HideChart bool   `json:"hide_chart"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Output: OutputPlain,
		},
	}
}

// Load reads the configuration from ~/.ftracker/config.json
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

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.Output == "" {
		cfg.Display.Output = defaults.Display.Output
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.ftracker/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path
func SaveFile(path string, cfg *Config) error {
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
	return createExample(path)
}

func createExample(path string) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := Config{
		Display: DisplayConfig{
			Output: OutputPlain,
		},
		Packages: workout.SamplePackages(),
	}

	return SaveFile(path, &example)
}

// Validate checks the display settings and that every package names a kind.
// Package values are checked when the package is built.
func (c *Config) Validate() error {
	if c.Display.Output != "" && c.Display.Output != OutputPlain && c.Display.Output != OutputTUI {
		return fmt.Errorf("display.output must be %q or %q, got %q", OutputPlain, OutputTUI, c.Display.Output)
	}

	for i, p := range c.Packages {
		if strings.TrimSpace(p.Code) == "" {
			return fmt.Errorf("packages[%d].code is required - one of %s", i, strings.Join(workout.Codes(), ", "))
		}
	}

	return nil
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
	return filepath.Join(home, ".ftracker"), nil
}
