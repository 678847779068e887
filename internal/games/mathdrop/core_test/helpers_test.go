package core_test

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/mathdrop/internal/config"
	"github.com/vovakirdan/mathdrop/internal/games/mathdrop/core"
	"github.com/zyedidia/generic/mapset"
)

// newEngine creates an engine from the default config with optional tweaks.
func newEngine(t *testing.T, seed int64, tweak func(*config.MathDropConfig)) *core.Engine {
	t.Helper()
	cfg := config.DefaultMathDropConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	e, err := core.New(cfg, seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// quiet disables spawning after the first step.
func quiet(cfg *config.MathDropConfig) {
	cfg.Spawn.Interval = time.Hour
}

// sortedIDs flattens a set into a sorted slice for comparison.
func sortedIDs(set mapset.Set[core.EntityID]) []core.EntityID {
	var ids []core.EntityID
	set.Each(func(id core.EntityID) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// countEvents returns how many events of kind are in events.
func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// findEvent returns the first event of kind.
func findEvent(events []core.Event, kind core.EventKind) (core.Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return core.Event{}, false
}

// column builds blocks stacked from row 0 in one column.
func column(nextID *core.EntityID, col int, colors ...core.Color) []core.Block {
	blocks := make([]core.Block, 0, len(colors))
	for row, c := range colors {
		*nextID++
		blocks = append(blocks, core.Block{ID: *nextID, Column: col, Row: row, Color: c})
	}
	return blocks
}
