package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file written inside the trifold directory.
const FileName = "trifold.yaml"

// Config represents the top-level trifold.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Prompts PromptsConfig `yaml:"prompts"`
}

// DataConfig locates the persisted budget state.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// DisplayConfig controls CLI rendering.
type DisplayConfig struct {
	Currency    string `yaml:"currency"`
	TopSpenders int    `yaml:"top_spenders"`
}

// PromptsConfig controls confirmation of destructive commands.
type PromptsConfig struct {
	AssumeYes bool `yaml:"assume_yes"`
}

// Load reads a trifold.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a fresh setup.
func Default(dataDir string) *Config {
	return &Config{
		Data: DataConfig{
			Dir: dataDir,
		},
		Display: DisplayConfig{
			Currency:    "лв",
			TopSpenders: 6,
		},
		Prompts: PromptsConfig{
			AssumeYes: false,
		},
	}
}

// DefaultDir returns the per-user trifold directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "trifold"), nil
}

// LoadOrDefault reads the config from dir, falling back to defaults when
// the file does not exist yet. Fields missing from a hand-written config
// are backfilled from the defaults.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(dir), nil
		}
		return nil, err
	}

	defaults := Default(dir)
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = defaults.Data.Dir
	}
	if cfg.Display.Currency == "" {
		cfg.Display.Currency = defaults.Display.Currency
	}
	if cfg.Display.TopSpenders == 0 {
		cfg.Display.TopSpenders = defaults.Display.TopSpenders
	}
	return cfg, nil
}
