package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/particle"
)

// drawText writes s from (x, y) until the screen edge
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// drawCentered writes text centred on row y
func drawCentered(s tcell.Screen, w, y int, style tcell.Style, text string) {
	drawText(s, (w-len([]rune(text)))/2, y, style, text)
}

func fillRow(s tcell.Screen, y, w int, style tcell.Style) {
	for x := range w {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// fillRect paints r within the viewport
func fillRect(s tcell.Screen, v viewport, x, y, w, h int, r rune, style tcell.Style) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if v.inside(cx, cy) {
				s.SetContent(cx, cy, r, nil, style)
			}
		}
	}
}

// drawParticles blends each particle's color over bg by its alpha
func drawParticles(s tcell.Screen, v viewport, ps []particle.Particle, bg core.RGB) {
	for i := range ps {
		p := &ps[i]
		cx, cy := v.cell(p.Pos.X, p.Pos.Y)
		if !v.inside(cx, cy) {
			continue
		}
		r := '·'
		if p.Size >= 4 {
			r = '*'
		}
		color := bg.BlendAlpha(p.Color, p.Alpha())
		s.SetContent(cx, cy, r, nil, tcell.StyleDefault.Foreground(toColor(color)).Background(toColor(bg)))
	}
}

// drawPanel clears a centred box for overlays and returns its top row
func drawPanel(s tcell.Screen, w, h, lines int) int {
	pw, ph := min(44, w-2), lines+2
	x, y := (w-pw)/2, max((h-ph)/2, 1)
	style := tcell.StyleDefault.Background(RgbPanel)
	for cy := y; cy < y+ph; cy++ {
		for cx := x; cx < x+pw; cx++ {
			s.SetContent(cx, cy, ' ', nil, style)
		}
	}
	return y + 1
}
