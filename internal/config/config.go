// Package config loads and saves the cuberobot configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SeamusWaldron/cuberobot"
	"github.com/SeamusWaldron/cuberobot/internal/rig"
)

const DefaultConfigFile = "config.json"

// Config holds the application configuration.
type Config struct {
	Serial    SerialConfig `json:"serial"`
	Algorithm string       `json:"algorithm"`
	// SolverCommand replaces the default python3 rubik_solver invocation.
	// The cube state and algorithm are appended as the last two arguments.
	SolverCommand []string `json:"solver_command,omitempty"`
	LogDir        string   `json:"log_dir,omitempty"`
}

// SerialConfig holds the rig connection settings.
type SerialConfig struct {
	Port              string `json:"port"`
	BaudRate          int    `json:"baud_rate"`
	SettleDelayMs     int    `json:"settle_delay_ms"`
	ResponseTimeoutMs int    `json:"response_timeout_ms"`
	QuietPeriodMs     int    `json:"quiet_period_ms"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	def := rig.DefaultConfig()
	return &Config{
		Serial: SerialConfig{
			Port:              def.Port,
			BaudRate:          def.BaudRate,
			SettleDelayMs:     int(def.SettleDelay / time.Millisecond),
			ResponseTimeoutMs: int(def.ResponseTimeout / time.Millisecond),
			QuietPeriodMs:     int(def.QuietPeriod / time.Millisecond),
		},
		Algorithm: string(cuberobot.DefaultAlgorithm),
	}
}

// Dir returns the cuberobot directory in the user's home directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cuberobot"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// Load reads the config at path, falling back to defaults when the file does
// not exist.
func Load(path string) (*Config, error) {
	cfg, err := LoadConfigFrom(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}

// LoadConfigFrom loads configuration from a specific file. Fields missing
// from the file keep their defaults.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveTo saves configuration to a specific file.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if _, err := cuberobot.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.Serial.BaudRate <= 0 {
		return fmt.Errorf("baud rate must be positive, got %d", c.Serial.BaudRate)
	}
	if c.Serial.SettleDelayMs < 0 || c.Serial.ResponseTimeoutMs < 0 || c.Serial.QuietPeriodMs < 0 {
		return fmt.Errorf("serial timings must not be negative")
	}
	return nil
}

// AlgorithmValue returns the configured algorithm, or the default when it
// is not recognized.
func (c *Config) AlgorithmValue() cuberobot.Algorithm {
	a, err := cuberobot.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return cuberobot.DefaultAlgorithm
	}
	return a
}

// Rig converts the serial settings to a link configuration.
func (c *Config) Rig() rig.Config {
	return rig.Config{
		Port:            c.Serial.Port,
		BaudRate:        c.Serial.BaudRate,
		SettleDelay:     time.Duration(c.Serial.SettleDelayMs) * time.Millisecond,
		ResponseTimeout: time.Duration(c.Serial.ResponseTimeoutMs) * time.Millisecond,
		QuietPeriod:     time.Duration(c.Serial.QuietPeriodMs) * time.Millisecond,
	}
}

// LogDirectory returns the configured log directory or the default one.
func (c *Config) LogDirectory() (string, error) {
	if c.LogDir != "" {
		return c.LogDir, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}
