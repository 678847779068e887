package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates an ASCII representation of a snapshot.
// This is used for debugging and golden outputs in tests.
//
// Format:
//   - Header with status, score and level
//   - Grid rows top to bottom: empty='.', blocks=S/B/L/A/G,
//     clearing blocks lowercase
//   - Falling items listed below with column, height and expression
func RenderASCII(s Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Status: %s | Score: %d | Level: %d | Solved: %d\n",
		s.Status, s.Score, s.Level, s.Solved))
	sb.WriteString(strings.Repeat("-", s.Columns+2) + "\n")

	grid := make([][]rune, s.MaxRows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(".", s.Columns))
	}
	for _, b := range s.Blocks {
		if b.Row < 0 || b.Row >= s.MaxRows || b.Column < 0 || b.Column >= s.Columns {
			continue
		}
		ch := b.Color.Char()
		if b.Clearing {
			ch = ch - 'A' + 'a'
		}
		grid[b.Row][b.Column] = ch
	}
	for r := s.MaxRows - 1; r >= 0; r-- {
		sb.WriteString("|" + string(grid[r]) + "|\n")
	}
	sb.WriteString(strings.Repeat("-", s.Columns+2) + "\n")

	for _, it := range s.Items {
		sb.WriteString(fmt.Sprintf("c%d y=%.1f %c %s\n", it.Column, it.Y, it.Color.Char(), it.Expression))
	}
	return sb.String()
}
