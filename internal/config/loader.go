package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTiers loads the tier table.
// Search order: customPath -> ~/.spaceshots/tiers.yaml -> ./configs/tiers.yaml -> embedded default
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped silently when unusable.
func LoadTiers(customPath string) (TierTable, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TierTable{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		tt, err := ParseTiers(data)
		if err != nil {
			return TierTable{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return tt, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tiers.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if tt, err := ParseTiers(data); err == nil {
				return tt, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tiers.yaml")); err == nil {
		if tt, err := ParseTiers(data); err == nil {
			return tt, nil
		}
	}

	// Use embedded default YAML
	tt, err := ParseTiers(defaultTiersYAML)
	if err != nil {
		return DefaultTiers(), nil // Fallback to hardcoded if embed fails
	}
	return tt, nil
}

// ParseTiers decodes and validates a YAML tier table.
func ParseTiers(data []byte) (TierTable, error) {
	var tt TierTable
	if err := yaml.Unmarshal(data, &tt); err != nil {
		return TierTable{}, fmt.Errorf("failed to parse tiers: %w", err)
	}
	if err := tt.Validate(); err != nil {
		return TierTable{}, err
	}
	return tt, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spaceshots", filename)
}
