package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds CLI defaults. Values in a snapshot document or on the
// command line take precedence.
type Settings struct {
	Projection ProjectionSettings `toml:"projection"`
	Output     OutputSettings     `toml:"output"`
	Logging    LoggingSettings    `toml:"logging"`
}

// ProjectionSettings holds projection defaults.
type ProjectionSettings struct {
	DefaultMonths     int  `toml:"default_months"`
	RecurringVariable bool `toml:"recurring_variable"`
}

// OutputSettings holds report preferences.
type OutputSettings struct {
	Format         string `toml:"format"`
	CurrencySymbol string `toml:"currency_symbol"`
	Directory      string `toml:"directory,omitempty"`
}

// LoggingSettings holds log preferences.
type LoggingSettings struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Projection: ProjectionSettings{
			DefaultMonths: 12,
		},
		Output: OutputSettings{
			Format:         "console",
			CurrencySymbol: "$",
		},
		Logging: LoggingSettings{
			Level: "warn",
		},
	}
}

// SettingsDir returns the XDG-compliant settings directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "forecast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "forecast")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "settings.toml")
}

// LoadSettings reads a settings file, returning defaults if it doesn't exist.
// An empty path means SettingsPath().
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		path = SettingsPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings: %w", err)
	}
	if cfg.Projection.DefaultMonths < 0 {
		return cfg, fmt.Errorf("parsing settings: default_months cannot be negative")
	}

	return cfg, nil
}

// SaveSettings writes settings to path, creating its directory.
func SaveSettings(path string, cfg Settings) error {
	if path == "" {
		path = SettingsPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
