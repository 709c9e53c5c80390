package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load builds the effective generation settings. A YAML file, if one is
// found, is merged over Default() and flags are merged over that. The
// result must pass Validate.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing settings file: icosphere.yaml
// in the working directory, then DefaultPath. Empty means none.
func findConfigFile() string {
	for _, path := range []string{"./icosphere.yaml", DefaultPath()} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultPath is where Save writes and where Load looks when no
// icosphere.yaml sits in the working directory.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir is the per-user directory holding icosphere settings.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Icosphere")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Icosphere")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "icosphere")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "icosphere")
	}
}

// loadFromFile unmarshals path over cfg; absent keys are not reset.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
