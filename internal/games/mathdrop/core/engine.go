// Package core provides the simulation engine for the Math Drop puzzle game.
// This package is UI-agnostic and deterministic: the engine only advances
// inside Step, and all randomness comes from a seeded source.
package core

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mathdrop/internal/config"
)

// Status is the lifecycle state of an engine.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
	StatusStopped
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StepReport summarizes one call to Step.
type StepReport struct {
	Status   Status
	Spawned  bool
	Landed   int
	GameOver bool    // True only on the step that ended the run
	Events   []Event // Everything emitted since the previous step, input included
}

// Engine is one independent game instance.
type Engine struct {
	cfg   config.MathDropConfig
	rng   *rand.Rand
	gen   *Generator
	store *Store
	diff  Difficulty
	queue DelayQueue

	now        time.Duration
	sinceSpawn time.Duration
	score      int
	status     Status
	events     []Event

	flash timer
	shake timer
}

// New validates cfg and creates a running engine seeded with seed.
// The first item spawns on the first step.
func New(cfg config.MathDropConfig, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mathdrop: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))
	diff := NewDifficulty(cfg)
	return &Engine{
		cfg:        cfg,
		rng:        rng,
		gen:        NewGenerator(rng),
		store:      NewStore(cfg.Grid.Columns),
		diff:       diff,
		sinceSpawn: diff.SpawnInterval,
		status:     StatusPlaying,
	}, nil
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Difficulty returns the current difficulty state.
func (e *Engine) Difficulty() Difficulty {
	return e.diff
}

// Store exposes the entity store, for level setups and tests.
func (e *Engine) Store() *Store {
	return e.store
}

// Now returns the engine clock.
func (e *Engine) Now() time.Duration {
	return e.now
}

// Step advances the simulation by elapsed. It is a no-op unless the engine
// is playing. Order within a step: clock, due clears, spawn, physics.
func (e *Engine) Step(elapsed time.Duration) StepReport {
	if e.status != StatusPlaying {
		return StepReport{Status: e.status}
	}
	elapsed = max(elapsed, 0)

	var report StepReport
	e.now += elapsed
	e.queue.RunDue(e.now)

	e.sinceSpawn += elapsed
	if e.sinceSpawn >= e.diff.SpawnInterval {
		e.sinceSpawn = 0
		report.Spawned = e.spawn()
	}

	res := StepPhysics(e.store, elapsed, e.cfg.Physics.ReferenceTick, e.cfg.Physics.SpeedScale, e.cfg.Grid.MaxRows, e.now)
	for _, b := range res.Landed {
		e.emit(Event{Kind: EventLanded, Column: b.Column, Row: b.Row, Color: b.Color})
	}
	report.Landed = len(res.Landed)
	if res.Overflow {
		e.endGame(res.OverflowColumn)
		report.GameOver = true
	}

	report.Status = e.status
	report.Events = e.DrainEvents()
	return report
}

// spawn drops a new item into a random column unless that column is full.
func (e *Engine) spawn() bool {
	col := e.rng.Intn(e.cfg.Grid.Columns)
	if e.store.ColumnHeight(col) >= e.cfg.Grid.MaxRows {
		return false
	}
	p := e.gen.Generate(e.diff.Level)
	jitter := 1 + (e.rng.Float64()*2-1)*e.cfg.Physics.SpeedJitter
	color := Color(e.rng.Intn(int(ColorCount)))
	e.store.AddItem(FallingItem{
		Column:     col,
		Y:          e.cfg.Spawn.Y,
		Expression: p.Expression,
		Answer:     p.Answer,
		FallSpeed:  e.diff.FallSpeed * jitter,
		Color:      color,
	})
	return true
}

// endGame moves to the terminal status and cancels pending clears.
func (e *Engine) endGame(col int) {
	e.status = StatusGameOver
	e.queue.Reset()
	e.emit(Event{Kind: EventGameOver, Column: col, Points: e.score, Level: e.diff.Level})
}

// SetPaused pauses or resumes a running engine. The clock and pending
// clears are frozen while paused.
func (e *Engine) SetPaused(paused bool) {
	switch {
	case paused && e.status == StatusPlaying:
		e.status = StatusPaused
	case !paused && e.status == StatusPaused:
		e.status = StatusPlaying
	}
}

// TogglePause flips between playing and paused.
func (e *Engine) TogglePause() {
	e.SetPaused(e.status == StatusPlaying)
}

// Stop ends the engine's lifecycle. Pending clears are discarded and
// further steps do nothing.
func (e *Engine) Stop() {
	e.status = StatusStopped
	e.queue.Reset()
}

// emit records an event stamped with the engine clock.
func (e *Engine) emit(ev Event) {
	ev.At = e.now
	e.events = append(e.events, ev)
}

// DrainEvents returns and clears the pending events.
func (e *Engine) DrainEvents() []Event {
	events := e.events
	e.events = nil
	return events
}
