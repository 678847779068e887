package core

import "time"

// Snapshot is an immutable copy of the engine state for renderers and tests.
type Snapshot struct {
	Now           time.Duration
	Status        Status
	Score         int
	Level         int
	Solved        int
	FallSpeed     float64
	SpawnInterval time.Duration
	Columns       int
	MaxRows       int
	Items         []FallingItem // Spawn order
	Blocks        []Block
	Flashing      bool
	Shaking       bool
	PendingClears int
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Now:           e.now,
		Status:        e.status,
		Score:         e.score,
		Level:         e.diff.Level,
		Solved:        e.diff.Solved,
		FallSpeed:     e.diff.FallSpeed,
		SpawnInterval: e.diff.SpawnInterval,
		Columns:       e.cfg.Grid.Columns,
		MaxRows:       e.cfg.Grid.MaxRows,
		Items:         e.store.Items(),
		Blocks:        e.store.Blocks(),
		Flashing:      e.flash.active(e.now),
		Shaking:       e.shake.active(e.now),
		PendingClears: e.queue.Len(),
	}
}

// Heights returns the block count of every column.
func (s Snapshot) Heights() []int {
	heights := make([]int, s.Columns)
	for _, b := range s.Blocks {
		if b.Column >= 0 && b.Column < s.Columns {
			heights[b.Column]++
		}
	}
	return heights
}

// BlockAt returns the block at a grid position.
func (s Snapshot) BlockAt(col, row int) (Block, bool) {
	for _, b := range s.Blocks {
		if b.Column == col && b.Row == row {
			return b, true
		}
	}
	return Block{}, false
}
