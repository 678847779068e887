// Package config provides YAML-based game configuration loading and
// difficulty presets for Math Drop.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// MathDropConfig contains all tunables of the Math Drop engine.
// Durations are simulated time, not wall-clock time.
type MathDropConfig struct {
	Grid       MathDropGrid       `yaml:"grid"`
	Physics    MathDropPhysics    `yaml:"physics"`
	Spawn      MathDropSpawn      `yaml:"spawn"`
	Scoring    MathDropScoring    `yaml:"scoring"`
	Effects    MathDropEffects    `yaml:"effects"`
	Difficulty MathDropDifficulty `yaml:"difficulty"`
}

// MathDropGrid defines the board dimensions.
type MathDropGrid struct {
	Columns int `yaml:"columns" env:"MATHDROP_COLUMNS"`
	MaxRows int `yaml:"max_rows" env:"MATHDROP_MAX_ROWS"`
}

// MathDropPhysics defines how falling items move.
type MathDropPhysics struct {
	BaseSpeed     float64       `yaml:"base_speed" env:"MATHDROP_BASE_SPEED"`         // Percent of board height per reference tick
	ReferenceTick time.Duration `yaml:"reference_tick" env:"MATHDROP_REFERENCE_TICK"` // Tick length the speeds are expressed in
	SpeedJitter   float64       `yaml:"speed_jitter" env:"MATHDROP_SPEED_JITTER"`     // 0.1 = each item gets 90%..110% of the current speed
	SpeedScale    float64       `yaml:"speed_scale" env:"MATHDROP_SPEED_SCALE"`       // Uniform multiplier applied by the stepper
}

// MathDropSpawn defines the spawn cadence.
type MathDropSpawn struct {
	Interval    time.Duration `yaml:"interval" env:"MATHDROP_SPAWN_INTERVAL"`
	MinInterval time.Duration `yaml:"min_interval" env:"MATHDROP_MIN_SPAWN"`
	Y           float64       `yaml:"y" env:"MATHDROP_SPAWN_Y"` // Start height; negative is above the board
}

// MathDropScoring defines point awards and the input length guard.
type MathDropScoring struct {
	MatchBase      int `yaml:"match_base"`      // Flat award per solved item, plus the level
	BlockPoints    int `yaml:"block_points"`    // Per block removed by a cluster clear
	ComboThreshold int `yaml:"combo_threshold"` // Cluster sizes above this earn the combo bonus
	ComboBonus     int `yaml:"combo_bonus"`
	SumBase        int `yaml:"sum_base"`
	SumPerItem     int `yaml:"sum_per_item"`
	SumPerBlock    int `yaml:"sum_per_block"`
	InputGuard     int `yaml:"input_guard" env:"MATHDROP_INPUT_GUARD"` // Longer unmatched input is rejected
}

// MathDropEffects defines the deferred clear and cosmetic timers.
type MathDropEffects struct {
	ClearDelay     time.Duration `yaml:"clear_delay" env:"MATHDROP_CLEAR_DELAY"`
	SumFlash       time.Duration `yaml:"sum_flash"`
	ComboFlash     time.Duration `yaml:"combo_flash"`
	Shake          time.Duration `yaml:"shake"`
	ShakeThreshold int           `yaml:"shake_threshold"` // Flagged clusters of at least this size shake the board
}

// MathDropDifficulty defines level progression.
type MathDropDifficulty struct {
	Enabled        bool          `yaml:"enabled" env:"MATHDROP_PROGRESSION"`
	StartLevel     int           `yaml:"start_level" env:"MATHDROP_START_LEVEL"`
	LevelThreshold int           `yaml:"level_threshold" env:"MATHDROP_LEVEL_THRESHOLD"` // Solves per level
	SpeedInc       float64       `yaml:"speed_inc" env:"MATHDROP_SPEED_INC"`
	SpawnDec       time.Duration `yaml:"spawn_dec" env:"MATHDROP_SPAWN_DEC"`
}

// Validate checks that the configuration describes a playable board.
func (c MathDropConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Grid.Columns > 0, "grid.columns must be positive, got %d", c.Grid.Columns)
	check(c.Grid.MaxRows > 0, "grid.max_rows must be positive, got %d", c.Grid.MaxRows)
	check(c.Physics.BaseSpeed > 0, "physics.base_speed must be positive, got %g", c.Physics.BaseSpeed)
	check(c.Physics.ReferenceTick > 0, "physics.reference_tick must be positive, got %s", c.Physics.ReferenceTick)
	check(c.Physics.SpeedJitter >= 0 && c.Physics.SpeedJitter < 1, "physics.speed_jitter must be in [0, 1), got %g", c.Physics.SpeedJitter)
	check(c.Physics.SpeedScale > 0, "physics.speed_scale must be positive, got %g", c.Physics.SpeedScale)
	check(c.Spawn.MinInterval > 0, "spawn.min_interval must be positive, got %s", c.Spawn.MinInterval)
	check(c.Spawn.Interval >= c.Spawn.MinInterval, "spawn.interval %s is below spawn.min_interval %s", c.Spawn.Interval, c.Spawn.MinInterval)
	check(c.Scoring.InputGuard > 0, "scoring.input_guard must be positive, got %d", c.Scoring.InputGuard)
	check(c.Effects.ClearDelay >= 0, "effects.clear_delay must not be negative, got %s", c.Effects.ClearDelay)
	check(c.Difficulty.StartLevel >= 1, "difficulty.start_level must be at least 1, got %d", c.Difficulty.StartLevel)
	check(c.Difficulty.LevelThreshold > 0, "difficulty.level_threshold must be positive, got %d", c.Difficulty.LevelThreshold)
	check(c.Difficulty.SpeedInc >= 0, "difficulty.speed_inc must not be negative, got %g", c.Difficulty.SpeedInc)
	check(c.Difficulty.SpawnDec >= 0, "difficulty.spawn_dec must not be negative, got %s", c.Difficulty.SpawnDec)

	return errors.Join(errs...)
}
