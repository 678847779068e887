package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mathdrop.yaml
var defaultMathDropYAML []byte

// DefaultMathDropConfig returns the default Math Drop configuration.
func DefaultMathDropConfig() MathDropConfig {
	return MathDropConfig{
		Grid: MathDropGrid{
			Columns: 5,
			MaxRows: 12,
		},
		Physics: MathDropPhysics{
			BaseSpeed:     0.15,
			ReferenceTick: 16 * time.Millisecond,
			SpeedJitter:   0.1,
			SpeedScale:    1.0,
		},
		Spawn: MathDropSpawn{
			Interval:    2500 * time.Millisecond,
			MinInterval: 500 * time.Millisecond,
			Y:           -15,
		},
		Scoring: MathDropScoring{
			MatchBase:      10,
			BlockPoints:    30,
			ComboThreshold: 4,
			ComboBonus:     100,
			SumBase:        100,
			SumPerItem:     50,
			SumPerBlock:    20,
			InputGuard:     3,
		},
		Effects: MathDropEffects{
			ClearDelay:     500 * time.Millisecond,
			SumFlash:       300 * time.Millisecond,
			ComboFlash:     200 * time.Millisecond,
			Shake:          400 * time.Millisecond,
			ShakeThreshold: 3,
		},
		Difficulty: MathDropDifficulty{
			Enabled:        true,
			StartLevel:     1,
			LevelThreshold: 5,
			SpeedInc:       0.01,
			SpawnDec:       50 * time.Millisecond,
		},
	}
}
