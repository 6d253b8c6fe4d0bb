// Package render draws arcade snapshots to a tcell screen
//
// World space (pixels) is scaled into the play area between the HUD row and the
// footer row. Rotation has no terminal form and is dropped; scale widens blocks.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/engine"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/snake"
	"github.com/lixenwraith/gesture-arcade/status"
	"github.com/lixenwraith/gesture-arcade/tower"
)

// Terminal renders snapshots on a tcell screen; only the simulation goroutine calls Render
type Terminal struct {
	screen tcell.Screen
	reg    *status.Registry

	// Debug shows the metrics line in the footer
	Debug bool
}

// NewTerminal creates a renderer; reg may be nil
func NewTerminal(screen tcell.Screen, reg *status.Registry) *Terminal {
	return &Terminal{screen: screen, reg: reg}
}

// viewport maps world pixels to the play area cells
type viewport struct {
	x, y, w, h     int
	worldW, worldH float64
}

func (v viewport) cell(wx, wy float64) (int, int) {
	return v.x + int(wx/v.worldW*float64(v.w)), v.y + int(wy/v.worldH*float64(v.h))
}

// span returns the cell extent of a world-space length along x or y, at least one cell
func (v viewport) span(length float64, horizontal bool) int {
	var n int
	if horizontal {
		n = int(length/v.worldW*float64(v.w) + 0.5)
	} else {
		n = int(length/v.worldH*float64(v.h) + 0.5)
	}
	return max(n, 1)
}

func (v viewport) inside(cx, cy int) bool {
	return cx >= v.x && cy >= v.y && cx < v.x+v.w && cy < v.y+v.h
}

// Render draws one frame and shows it
func (t *Terminal) Render(snap *engine.Snapshot) {
	t.screen.Clear()
	w, h := t.screen.Size()
	if w < 20 || h < 6 {
		drawText(t.screen, 0, 0, tcell.StyleDefault.Foreground(RgbHUD), "terminal too small")
		t.screen.Show()
		return
	}

	area := viewport{
		x: 0,
		y: parameter.ScreenHUDRows,
		w: w,
		h: h - parameter.ScreenHUDRows - parameter.ScreenFooterRows,
	}
	switch v := snap.View.(type) {
	case snake.View:
		area.worldW, area.worldH = float64(v.Width), float64(v.Height)
		t.drawSnake(area, v)
	case tower.View:
		area.worldW, area.worldH = v.Width, v.Height
		t.drawTower(area, v, snap)
	}

	t.drawHUD(w, snap)
	switch snap.Mode {
	case engine.ModeMenu:
		t.drawMenu(w, h, snap)
	case engine.ModeGameOver:
		t.drawGameOver(w, h, snap)
	}
	t.drawFooter(w, h, snap)
	t.screen.Show()
}

// drawHUD writes the score row
func (t *Terminal) drawHUD(w int, snap *engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(RgbHUD).Background(RgbDefaultBg)
	fillRow(t.screen, 0, w, style)

	line := fmt.Sprintf(" %s  score %d  high %d  level %d",
		strings.ToUpper(snap.Game.String()), snap.Score, snap.HighScore, snap.Level)
	switch v := snap.View.(type) {
	case snake.View:
		line += fmt.Sprintf("  speed %d", v.Speed)
	case tower.View:
		line += fmt.Sprintf("  attempts %d", v.Attempts)
	}
	line += "  " + formatElapsed(snap.Elapsed)
	drawText(t.screen, 0, 0, style, line)

	hand := "no hand"
	if snap.Signal.Present {
		hand = "hand"
	}
	drawText(t.screen, w-len(hand)-1, 0, style.Foreground(RgbHUDDim), hand)
}

// drawFooter writes key help or, in debug mode, the metrics line
func (t *Terminal) drawFooter(w, h int, snap *engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(RgbHUDDim).Background(RgbDefaultBg)
	fillRow(t.screen, h-1, w, style)

	if t.Debug && t.reg != nil {
		drawText(t.screen, 0, h-1, style.Foreground(RgbDebug), strings.Join(t.reg.Lines(), " "))
		return
	}
	help := "esc menu  q quit"
	if snap.Mode == engine.ModeGameOver {
		help = "r restart  q quit"
	}
	drawText(t.screen, 1, h-1, style, help)
}

func formatElapsed(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
