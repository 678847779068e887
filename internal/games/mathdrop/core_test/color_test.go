package core_test

import (
	"testing"

	"github.com/vovakirdan/mathdrop/internal/games/mathdrop/core"
)

func TestParseColor(t *testing.T) {
	for c := core.Color(0); c < core.ColorCount; c++ {
		byName, ok := core.ParseColor(c.String())
		if !ok || byName != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), byName, ok)
		}
		byChar, ok := core.ParseColor(string(c.Char()))
		if !ok || byChar != c {
			t.Errorf("ParseColor(%q) = %v, %v", string(c.Char()), byChar, ok)
		}
	}

	tests := []struct {
		in   string
		want core.Color
		ok   bool
	}{
		{"Lemon", core.ColorLemon, true},
		{"G", core.ColorGrape, true},
		{"mango", core.ColorStrawberry, false},
		{"", core.ColorStrawberry, false},
	}
	for _, tt := range tests {
		got, ok := core.ParseColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if core.ColorCount.String() != "unknown" || core.ColorCount.Char() != '?' {
		t.Errorf("sentinel color should render as unknown")
	}
}

func TestSnapshotBlockAt(t *testing.T) {
	e := newEngine(t, 1, quiet)
	var id core.EntityID
	blocks := column(&id, 2, core.ColorApple, core.ColorGrape)
	e.Store().SetBlocks(blocks)

	snap := e.Snapshot()
	b, ok := snap.BlockAt(2, 1)
	if !ok {
		t.Fatal("expected block at column 2 row 1")
	}
	if b.Color != core.ColorGrape {
		t.Errorf("block color = %v, want grape", b.Color)
	}
	if _, ok := snap.BlockAt(2, 2); ok {
		t.Error("expected empty cell above the stack")
	}
	if _, ok := snap.BlockAt(0, 0); ok {
		t.Error("expected empty column")
	}
}
