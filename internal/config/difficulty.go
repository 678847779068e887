package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a preset name to a DifficultyPreset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty preset %q", s)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyMathDropPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values as they are.
func ApplyMathDropPreset(cfg *MathDropConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Physics.SpeedScale = 0.75
		cfg.Spawn.Interval = 3000 * time.Millisecond
	case DifficultyHard:
		cfg.Physics.SpeedScale = 1.25
		cfg.Difficulty.StartLevel = 3
		cfg.Spawn.Interval = 2000 * time.Millisecond
	case DifficultyFixed:
		cfg.Physics.SpeedScale = 0.75
	}
	if cfg.Spawn.Interval < cfg.Spawn.MinInterval {
		cfg.Spawn.Interval = cfg.Spawn.MinInterval
	}
}
