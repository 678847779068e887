package core

import (
	"strings"
	"testing"
)

// cellAt is an expected cell at a screen position.
type cellAt struct {
	x, y int
	want Cell
}

func plain(r rune) Cell { return Cell{Rune: r, Color: ColorDefault} }

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 12) {
			t.Errorf("Row(%d) = %q, expected blanks", y, row)
		}
	}
}

func TestScreenDraw(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		draw  func(s *Screen)
		cells []cellAt
	}{
		{
			name: "set and out of bounds",
			w:    10,
			h:    10,
			draw: func(s *Screen) {
				s.Set(5, 5, 'X')
				s.Set(-1, 0, 'A')
				s.Set(100, 0, 'A')
				s.Set(0, -1, 'A')
				s.Set(0, 100, 'A')
			},
			cells: []cellAt{
				{5, 5, plain('X')},
				{-1, 0, blankCell},
				{100, 0, blankCell},
				{0, 0, blankCell},
			},
		},
		{
			name: "colored text keeps its color",
			w:    10,
			h:    3,
			draw: func(s *Screen) {
				s.DrawTextColored(1, 1, "ab", ColorPink)
			},
			cells: []cellAt{
				{1, 1, Cell{Rune: 'a', Color: ColorPink}},
				{2, 1, Cell{Rune: 'b', Color: ColorPink}},
				{3, 1, blankCell},
			},
		},
		{
			name: "plain set resets color",
			w:    10,
			h:    3,
			draw: func(s *Screen) {
				s.SetColored(1, 1, 'a', ColorLime)
				s.Set(1, 1, 'x')
			},
			cells: []cellAt{{1, 1, plain('x')}},
		},
		{
			name: "text clipped at the right edge",
			w:    20,
			h:    2,
			draw: func(s *Screen) {
				s.DrawText(18, 0, "Hello")
			},
			cells: []cellAt{{18, 0, plain('H')}, {19, 0, plain('e')}},
		},
		{
			name: "centered text",
			w:    20,
			h:    5,
			draw: func(s *Screen) {
				s.DrawTextCentered(2, "Hi")
			},
			cells: []cellAt{{9, 2, plain('H')}, {10, 2, plain('i')}, {8, 2, blankCell}},
		},
		{
			name: "centered multibyte text counts runes",
			w:    11,
			h:    1,
			draw: func(s *Screen) {
				s.DrawTextCenteredColored(0, "×3×", ColorPurple)
			},
			cells: []cellAt{
				{4, 0, Cell{Rune: '×', Color: ColorPurple}},
				{5, 0, Cell{Rune: '3', Color: ColorPurple}},
				{6, 0, Cell{Rune: '×', Color: ColorPurple}},
			},
		},
		{
			name: "filled rect stays inside",
			w:    10,
			h:    10,
			draw: func(s *Screen) {
				s.DrawRectColored(NewRect(2, 2, 3, 3), '#', ColorOrange)
			},
			cells: []cellAt{
				{2, 2, Cell{Rune: '#', Color: ColorOrange}},
				{4, 4, Cell{Rune: '#', Color: ColorOrange}},
				{1, 1, blankCell},
				{5, 5, blankCell},
			},
		},
		{
			name: "box corners and edges",
			w:    10,
			h:    10,
			draw: func(s *Screen) {
				s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorGray)
			},
			cells: []cellAt{
				{1, 1, Cell{Rune: '┌', Color: ColorGray}},
				{5, 1, Cell{Rune: '┐', Color: ColorGray}},
				{1, 4, Cell{Rune: '└', Color: ColorGray}},
				{5, 4, Cell{Rune: '┘', Color: ColorGray}},
				{3, 1, Cell{Rune: '─', Color: ColorGray}},
				{3, 4, Cell{Rune: '─', Color: ColorGray}},
				{1, 2, Cell{Rune: '│', Color: ColorGray}},
				{5, 3, Cell{Rune: '│', Color: ColorGray}},
				{3, 2, blankCell},
			},
		},
		{
			name: "horizontal line",
			w:    10,
			h:    5,
			draw: func(s *Screen) {
				s.DrawHLine(2, 2, 5, '-')
			},
			cells: []cellAt{{2, 2, plain('-')}, {6, 2, plain('-')}, {7, 2, blankCell}},
		},
		{
			name: "fill then clear",
			w:    5,
			h:    5,
			draw: func(s *Screen) {
				s.Fill('#')
				s.Clear()
			},
			cells: []cellAt{{0, 0, blankCell}, {4, 4, blankCell}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.w, tt.h)
			tt.draw(s)
			for _, c := range tt.cells {
				if got := s.GetCell(c.x, c.y); got != c.want {
					t.Errorf("GetCell(%d, %d) = %+v, expected %+v", c.x, c.y, got, c.want)
				}
			}
		})
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BB")
	s.DrawText(0, 2, "CCCCC")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"string", s.String(), "AAAAA\nBB   \nCCCCC"},
		{"row", s.Row(1), "BB   "},
		{"row out of bounds", s.Row(-1), "     "},
		{"row past bottom", s.Row(3), "     "},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, expected %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorCyan)

	sizes := []struct{ w, h int }{{8, 4}, {15, 8}, {15, 8}}
	for _, sz := range sizes {
		s.Resize(sz.w, sz.h)
		if s.Width() != sz.w || s.Height() != sz.h {
			t.Errorf("after Resize(%d, %d) size = %dx%d", sz.w, sz.h, s.Width(), s.Height())
		}
		if !strings.HasPrefix(s.Row(0), "Hello") {
			t.Errorf("content lost at %dx%d: %q", sz.w, sz.h, s.Row(0))
		}
		if c := s.GetCell(0, 0); c.Color != ColorCyan {
			t.Errorf("color lost at %dx%d: %+v", sz.w, sz.h, c)
		}
		if c := s.GetCell(sz.w-1, sz.h-1); c != blankCell {
			t.Errorf("new area not blank at %dx%d: %+v", sz.w, sz.h, c)
		}
	}
}
