package core

import "strings"

// Color tags a falling item and the block it becomes.
// Clustering and the sum-all rule group by this tag alone.
type Color uint8

const (
	ColorStrawberry Color = iota
	ColorBlueberry
	ColorLemon
	ColorApple
	ColorGrape
	ColorCount // Sentinel value for iteration
)

// String returns the flavor name of a color.
func (c Color) String() string {
	switch c {
	case ColorStrawberry:
		return "strawberry"
	case ColorBlueberry:
		return "blueberry"
	case ColorLemon:
		return "lemon"
	case ColorApple:
		return "apple"
	case ColorGrape:
		return "grape"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorStrawberry:
		return 'S'
	case ColorBlueberry:
		return 'B'
	case ColorLemon:
		return 'L'
	case ColorApple:
		return 'A'
	case ColorGrape:
		return 'G'
	default:
		return '?'
	}
}

// ParseColor converts a flavor name or its initial to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "strawberry", "s":
		return ColorStrawberry, true
	case "blueberry", "b":
		return ColorBlueberry, true
	case "lemon", "l":
		return ColorLemon, true
	case "apple", "a":
		return ColorApple, true
	case "grape", "g":
		return ColorGrape, true
	default:
		return ColorStrawberry, false
	}
}
