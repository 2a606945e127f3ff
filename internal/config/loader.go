package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location in the search order.
const LocalPath = "configs/road.yaml"

// LoadRoad loads the road game configuration and validates it.
// Search order: customPath -> ~/.roadrace/configs/road.yaml -> ./configs/road.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadRoad(customPath string) (RoadConfig, error) {
	cfg, err := loadRoad(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadRoad(customPath string) (RoadConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRoadConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRoad(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("road.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRoad(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parseRoad(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRoad(defaultRoadYAML)
	if err != nil {
		return DefaultRoadConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRoad decodes YAML over the hardcoded defaults.
func parseRoad(data []byte) (RoadConfig, error) {
	cfg := DefaultRoadConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRoadConfig(), err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg RoadConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadrace", "configs", filename)
}
