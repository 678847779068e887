package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/mathdrop/internal/games/mathdrop/core"
)

func TestGenerateLevelOneBounds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		gen := core.NewGenerator(rand.New(rand.NewSource(seed)))
		for i := 0; i < 100; i++ {
			p := gen.Generate(1)
			if p.Op != core.OpAdd {
				t.Fatalf("level 1 produced operator %c", p.Op)
			}
			if p.A < 1 || p.A > 5 || p.B < 0 || p.B > 5 {
				t.Fatalf("level 1 operands out of range: %s", p.Expression)
			}
			if p.Answer < 0 || p.Answer > 10 {
				t.Fatalf("level 1 answer %d out of range: %s", p.Answer, p.Expression)
			}
		}
	}
}

func TestGenerateLevelTwoBounds(t *testing.T) {
	gen := core.NewGenerator(rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		p := gen.Generate(2)
		if p.Op != core.OpAdd {
			t.Fatalf("level 2 produced operator %c", p.Op)
		}
		if p.A < 2 || p.A > 9 || p.B < 2 || p.B > 9 || p.Answer > 18 {
			t.Fatalf("level 2 out of range: %s = %d", p.Expression, p.Answer)
		}
	}
}

func TestGenerateHigherLevels(t *testing.T) {
	tests := []struct {
		level         int
		minMinuend    int
		maxMinuend    int
		minSubtrahend int
		maxSubtrahend int
	}{
		{level: 3, minMinuend: 2, maxMinuend: 10, minSubtrahend: 1, maxSubtrahend: 9},
		{level: 4, minMinuend: 11, maxMinuend: 18, minSubtrahend: 2, maxSubtrahend: 9},
		{level: 9, minMinuend: 11, maxMinuend: 18, minSubtrahend: 2, maxSubtrahend: 9},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level_%d", tt.level), func(t *testing.T) {
			gen := core.NewGenerator(rand.New(rand.NewSource(int64(tt.level))))
			var adds, subs int
			for i := 0; i < 2000; i++ {
				p := gen.Generate(tt.level)
				if p.Answer <= 0 {
					t.Fatalf("non-positive answer: %s = %d", p.Expression, p.Answer)
				}
				want := fmt.Sprintf("%d %c %d", p.A, p.Op, p.B)
				if p.Expression != want {
					t.Fatalf("expression %q, want %q", p.Expression, want)
				}
				switch p.Op {
				case core.OpAdd:
					adds++
					if p.Answer != p.A+p.B {
						t.Fatalf("wrong sum: %s = %d", p.Expression, p.Answer)
					}
				case core.OpSub:
					subs++
					if p.A < tt.minMinuend || p.A > tt.maxMinuend {
						t.Fatalf("minuend out of range: %s", p.Expression)
					}
					if p.B < tt.minSubtrahend || p.B > tt.maxSubtrahend || p.B >= p.A {
						t.Fatalf("subtrahend out of range: %s", p.Expression)
					}
					if p.Answer != p.A-p.B {
						t.Fatalf("wrong difference: %s = %d", p.Expression, p.Answer)
					}
				}
			}
			if adds == 0 || subs == 0 {
				t.Errorf("expected both operators, got %d additions and %d subtractions", adds, subs)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := core.NewGenerator(rand.New(rand.NewSource(42)))
	b := core.NewGenerator(rand.New(rand.NewSource(42)))
	for i := 0; i < 100; i++ {
		level := 1 + i%5
		pa, pb := a.Generate(level), b.Generate(level)
		if pa != pb {
			t.Fatalf("step %d: %+v != %+v", i, pa, pb)
		}
	}
}
