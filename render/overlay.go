package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/engine"
	"github.com/lixenwraith/gesture-arcade/snake"
	"github.com/lixenwraith/gesture-arcade/tower"
)

// themeName reads the active palette name from the view
func themeName(view any) string {
	switch v := view.(type) {
	case snake.View:
		return v.Theme.Name
	case tower.View:
		return v.Theme.Name
	}
	return "-"
}

func (t *Terminal) drawMenu(w, h int, snap *engine.Snapshot) {
	lines := []string{
		"GESTURE ARCADE",
		"",
		fmt.Sprintf("game        %-10s [tab]", snap.Game),
		fmt.Sprintf("theme       %-10s [t]", themeName(snap.View)),
		fmt.Sprintf("difficulty  %-10s [d]", snap.Session.Difficulty),
	}
	// A session ended without game over, e.g. by a lost capture, reports here
	if snap.Outcome != "" && !snap.Paused {
		lines = append(lines, "", snap.Outcome)
	}
	lines = append(lines, "", "enter  start")
	if snap.Paused {
		lines = append(lines, "esc    resume")
	}
	lines = append(lines, "q      quit")

	y := drawPanel(t.screen, w, h, len(lines))
	base := tcell.StyleDefault.Background(RgbPanel)
	for i, l := range lines {
		style := base.Foreground(RgbHUD)
		if i == 0 {
			style = base.Foreground(RgbTitle).Bold(true)
		}
		drawCentered(t.screen, w, y+i, style, l)
	}
}

func (t *Terminal) drawGameOver(w, h int, snap *engine.Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("score  %d", snap.Score),
		fmt.Sprintf("level  %d", snap.Level),
		fmt.Sprintf("high   %d", snap.HighScore),
		fmt.Sprintf("time   %s", formatElapsed(snap.Elapsed)),
	}
	if snap.Outcome != "" {
		lines = append(lines, "", snap.Outcome)
	}
	lines = append(lines, "", "r  restart")

	y := drawPanel(t.screen, w, h, len(lines))
	base := tcell.StyleDefault.Background(RgbPanel)
	for i, l := range lines {
		style := base.Foreground(RgbHUD)
		if i == 0 {
			style = base.Foreground(RgbGameOver).Bold(true)
		}
		drawCentered(t.screen, w, y+i, style, l)
	}
}
