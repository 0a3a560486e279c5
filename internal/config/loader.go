package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the match3 configuration.
// Search order: customPath -> ~/.match3/config.yaml -> ./configs/match3.yaml -> embedded default.
// Files are applied over DefaultConfig, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parseOver(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "match3.yaml")); err == nil {
		if parsed, ok := parseOver(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parseOver(defaultMatch3YAML); ok {
		return parsed, nil
	}
	return DefaultConfig(), nil // Fallback to hardcoded if embed fails
}

// parseOver unmarshals data over the hard-coded defaults.
func parseOver(data []byte) (Config, bool) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", filename)
}
