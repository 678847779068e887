package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the Math Drop config file in the search directories.
const FileName = "mathdrop.yaml"

// LoadMathDrop loads Math Drop configuration and applies MATHDROP_* environment overrides.
// Search order: customPath -> ~/.mathdrop/configs/mathdrop.yaml -> ./configs/mathdrop.yaml -> embedded default
// Files may be partial; missing keys keep their default values.
func LoadMathDrop(customPath string) (MathDropConfig, error) {
	cfg, err := loadMathDropFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadMathDropFile(customPath string) (MathDropConfig, error) {
	cfg := DefaultMathDropConfig()

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
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMathDropConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMathDropConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMathDropYAML, &cfg); err != nil {
		return DefaultMathDropConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides fields that have a MATHDROP_* variable set.
// Unset variables leave the loaded values untouched.
func ApplyEnv(cfg *MathDropConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathdrop", "configs", filename)
}
