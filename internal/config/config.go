package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultVersion = 1

	// DefaultPrecision prints floats in shortest round-trip form.
	DefaultPrecision = -1
	// MaxPrecision is the largest number of decimal places a float64 can
	// meaningfully carry.
	MaxPrecision = 17

	dirName  = "calc"
	fileName = "config.json"
)

// Config holds display preferences. It never stores results.
type Config struct {
	Version int `json:"version"`

	// Precision is the number of decimal places for float results (default -1 = shortest).
	Precision *int `json:"precision,omitempty"`

	// Boxed draws the demo report inside a border (default false).
	Boxed *bool `json:"boxed,omitempty"`
}

// GetPrecision returns the precision setting (default -1).
func (c *Config) GetPrecision() int {
	if c == nil || c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

// IsBoxed returns whether the demo is boxed (default false).
func (c *Config) IsBoxed() bool {
	if c == nil || c.Boxed == nil {
		return false
	}
	return *c.Boxed
}

// DefaultPath returns the config location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version: DefaultVersion,
	}
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault reads config from disk, returning defaults if the file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes a config to disk, creating the parent directory.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if c.Precision != nil {
		if err := ValidatePrecision(*c.Precision); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePrecision checks a precision value from config or a flag.
func ValidatePrecision(p int) error {
	if p < DefaultPrecision || p > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d, got %d", DefaultPrecision, MaxPrecision, p)
	}
	return nil
}
