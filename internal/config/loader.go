package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WorldFile is the file name looked up in the search directories.
const WorldFile = "world.yaml"

// LoadWorld loads and validates the world configuration.
// Search order: customPath -> ~/.homestead/world.yaml -> ./configs/world.yaml -> embedded default
// The returned string names the source that was used.
func LoadWorld(customPath string) (WorldConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WorldConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseWorld(data)
		if err != nil {
			return WorldConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Broken files there are skipped rather than fatal.
	for _, path := range []string{userConfigPath(WorldFile), filepath.Join("configs", WorldFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseWorld(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := ParseWorld(defaultWorldYAML); err == nil {
		return cfg, "embedded", nil
	}
	return DefaultWorldConfig(), "built-in", nil // Fallback to hardcoded if embed fails
}

// ParseWorld decodes and validates a world file.
func ParseWorld(data []byte) (WorldConfig, error) {
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return WorldConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg WorldConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".homestead", filename)
}
