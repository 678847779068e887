package core

import (
	"time"

	"github.com/vovakirdan/mathdrop/internal/config"
)

// Difficulty tracks level progression. Difficulty only ever increases.
type Difficulty struct {
	Level         int
	FallSpeed     float64       // Base fall speed for new items, percent per reference tick
	SpawnInterval time.Duration // Simulated time between spawns
	Solved        int           // Single-item matches this run

	enabled   bool
	threshold int
	speedInc  float64
	spawnDec  time.Duration
	minSpawn  time.Duration
}

// NewDifficulty creates the starting difficulty for a run.
func NewDifficulty(cfg config.MathDropConfig) Difficulty {
	return Difficulty{
		Level:         cfg.Difficulty.StartLevel,
		FallSpeed:     cfg.Physics.BaseSpeed,
		SpawnInterval: cfg.Spawn.Interval,
		enabled:       cfg.Difficulty.Enabled,
		threshold:     cfg.Difficulty.LevelThreshold,
		speedInc:      cfg.Difficulty.SpeedInc,
		spawnDec:      cfg.Difficulty.SpawnDec,
		minSpawn:      cfg.Spawn.MinInterval,
	}
}

// RecordSolve counts one solved item and reports whether the level went up.
// With progression disabled only the counter advances.
func (d *Difficulty) RecordSolve() bool {
	d.Solved++
	if !d.enabled || d.threshold <= 0 || d.Solved%d.threshold != 0 {
		return false
	}
	d.Level++
	d.FallSpeed += d.speedInc
	d.SpawnInterval = max(d.minSpawn, d.SpawnInterval-d.spawnDec)
	return true
}
