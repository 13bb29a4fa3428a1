package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileName is the config file looked up in the user and local directories.
const fileName = "stardodge.yaml"

// Load loads Star Dodge configuration.
// Search order: customPath -> ~/.stardodge/configs/stardodge.yaml -> ./configs/stardodge.yaml -> embedded default
// Values missing from a file keep their defaults. A custom path ending in .toml is read as TOML.
func Load(customPath string) (StarDodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StarDodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		parse := Parse
		if strings.EqualFold(filepath.Ext(customPath), ".toml") {
			parse = ParseTOML
		}
		cfg, err := parse(data)
		if err != nil {
			return StarDodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultStarDodgeYAML)
	if err != nil {
		return DefaultStarDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
func Parse(data []byte) (StarDodgeConfig, error) {
	cfg := DefaultStarDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StarDodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return StarDodgeConfig{}, err
	}
	return cfg, nil
}

// ParseTOML is Parse for TOML documents.
func ParseTOML(data []byte) (StarDodgeConfig, error) {
	cfg := DefaultStarDodgeConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return StarDodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return StarDodgeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stardodge", "configs", filename)
}
