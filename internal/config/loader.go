package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCourier loads the Courier game configuration.
// Search order: customPath -> ~/.courier/configs/courier.yaml -> ./configs/courier.yaml -> embedded default
func LoadCourier(customPath string) (CourierConfig, error) {
	var cfg CourierConfig

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
	if userCfgPath := userConfigPath("courier.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/courier.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCourierYAML, &cfg); err != nil {
		return DefaultCourierConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".courier", "configs", filename)
}

// ApplyCourierPreset modifies the config based on a difficulty preset.
func ApplyCourierPreset(cfg *CourierConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Traffic.Trucks = 4
		cfg.Traffic.MaxSpeed = 3
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Traffic.Trucks = 5
		cfg.Traffic.MinSpeed = 2
		cfg.Traffic.MaxSpeed = 4
	}
}
