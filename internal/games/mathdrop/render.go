package mathdrop

import (
	"fmt"

	"github.com/vovakirdan/mathdrop/internal/config"
	platformcore "github.com/vovakirdan/mathdrop/internal/core"
	"github.com/vovakirdan/mathdrop/internal/games/mathdrop/core"
)

// Rendering glyphs
const (
	BlockGlyph    = '█'
	ClearingGlyph = '▒'
)

// colorFor maps a flavor to a terminal color.
func colorFor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorStrawberry:
		return platformcore.ColorPink
	case core.ColorBlueberry:
		return platformcore.ColorBrightCyan
	case core.ColorLemon:
		return platformcore.ColorBrightYellow
	case core.ColorApple:
		return platformcore.ColorLime
	case core.ColorGrape:
		return platformcore.ColorPurple
	default:
		return platformcore.ColorWhite
	}
}

// boardLayout is the screen geometry of the play field.
type boardLayout struct {
	x, y  int // Top-left corner inside the border
	w, h  int // Inner size
	rowH  int // Lines per grid row
	shake int // Horizontal offset while shaking
}

func (g *Game) layout(dst *platformcore.Screen, snap core.Snapshot) boardLayout {
	avail := dst.Height() - hudHeight - footHeight - 2
	rowH := max(1, avail/snap.MaxRows)
	w := snap.Columns * cellW
	l := boardLayout{
		x:    (dst.Width() - w) / 2,
		y:    hudHeight + 1,
		w:    w,
		h:    rowH * snap.MaxRows,
		rowH: rowH,
	}
	if snap.Shaking {
		l.shake = []int{-1, 1}[g.ticks/2%2]
	}
	return l
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.engine.Snapshot()
	l := g.layout(dst, snap)

	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap, l)
	g.renderBlocks(dst, snap, l)
	g.renderItems(dst, snap, l)
	g.renderAnswer(dst, snap, l)
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, level and the current banner.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	level := fmt.Sprintf("Level: %d", snap.Level)
	if config.IsFixedPreset(g.preset()) {
		level = "Zen"
	}
	dst.DrawTextCentered(0, level)
	solved := fmt.Sprintf("Solved: %d", snap.Solved)
	dst.DrawText(dst.Width()-len(solved)-1, 0, solved)

	if snap.Now < g.banner.until {
		dst.DrawTextCenteredColored(1, g.banner.text, g.banner.color)
	}
}

// renderBoard draws the border, highlighted while flashing.
func (g *Game) renderBoard(dst *platformcore.Screen, snap core.Snapshot, l boardLayout) {
	border := platformcore.ColorGray
	if snap.Flashing {
		border = platformcore.ColorBrightWhite
	}
	dst.DrawBoxColored(platformcore.NewRect(l.x-1+l.shake, l.y-1, l.w+2, l.h+2), border)
}

// renderBlocks draws the settled stack. Row 0 sits on the bottom border.
func (g *Game) renderBlocks(dst *platformcore.Screen, snap core.Snapshot, l boardLayout) {
	for _, b := range snap.Blocks {
		glyph := BlockGlyph
		if b.Clearing {
			glyph = ClearingGlyph
		}
		rect := platformcore.NewRect(
			l.x+l.shake+b.Column*cellW,
			l.y+l.h-(b.Row+1)*l.rowH,
			cellW-1,
			l.rowH,
		)
		dst.DrawRectColored(rect, glyph, colorFor(b.Color))
	}
}

// renderItems draws falling expressions. Items above the board are hidden.
func (g *Game) renderItems(dst *platformcore.Screen, snap core.Snapshot, l boardLayout) {
	for _, it := range snap.Items {
		if it.Y < 0 {
			continue
		}
		y := platformcore.Clamp(l.y+int(it.Y/100*float64(l.h)), l.y, l.y+l.h-1)
		text := it.Expression
		x := l.x + l.shake + it.Column*cellW + (cellW-1-len(text))/2
		dst.DrawTextColored(x, y, text, colorFor(it.Color))
	}
}

// renderAnswer draws the input line under the board.
func (g *Game) renderAnswer(dst *platformcore.Screen, snap core.Snapshot, l boardLayout) {
	y := l.y + l.h + 1
	color := platformcore.ColorBrightWhite
	if snap.Now < g.wrongUntil {
		color = platformcore.ColorBrightRed
	}
	dst.DrawTextCenteredColored(y, fmt.Sprintf("Answer: %s_", string(g.input)), color)
	dst.DrawTextCenteredColored(y+1, "Type answers | Backspace delete | P pause | M mute", platformcore.ColorGray)
}

// renderOverlay draws pause and game over boxes.
func (g *Game) renderOverlay(dst *platformcore.Screen, snap core.Snapshot) {
	switch snap.Status {
	case core.StatusPaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case core.StatusGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Level: %d  |  Press R to restart", snap.Score, snap.Level)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
