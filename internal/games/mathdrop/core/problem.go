package core

import (
	"fmt"
	"math/rand"
)

// Operator is the arithmetic operation of a problem.
type Operator rune

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
)

// Problem is a generated arithmetic expression and its exact answer.
type Problem struct {
	A, B       int
	Op         Operator
	Expression string // "A op B"
	Answer     int
}

// bigAddendChance is the probability, from level 3 on, that an addition
// uses a two-digit first operand.
const bigAddendChance = 0.7

// Generator produces problems scaled by level.
// It is deterministic for a given random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// between returns a random int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// Generate returns a problem for the given level. Levels below 1 are treated as 1.
// Answers are never negative.
func (g *Generator) Generate(level int) Problem {
	switch {
	case level <= 1:
		a, b := g.between(1, 5), g.between(1, 5)
		if a+b > 10 {
			b = 10 - a
		}
		return newProblem(a, OpAdd, b)
	case level == 2:
		return newProblem(g.between(2, 9), OpAdd, g.between(2, 9))
	}

	if g.rng.Float64() < 0.5 {
		return g.addition()
	}
	if level == 3 {
		a := g.between(2, 10)
		return newProblem(a, OpSub, g.between(1, a-1))
	}
	a, b := g.between(11, 18), g.between(2, 9)
	for b >= a {
		b = g.between(2, 9)
	}
	return newProblem(a, OpSub, b)
}

func (g *Generator) addition() Problem {
	if g.rng.Float64() < bigAddendChance {
		return newProblem(g.between(10, 15), OpAdd, g.between(1, 4))
	}
	return newProblem(g.between(2, 9), OpAdd, g.between(2, 9))
}

func newProblem(a int, op Operator, b int) Problem {
	answer := a + b
	if op == OpSub {
		answer = a - b
	}
	return Problem{
		A:          a,
		B:          b,
		Op:         op,
		Expression: fmt.Sprintf("%d %c %d", a, op, b),
		Answer:     answer,
	}
}
