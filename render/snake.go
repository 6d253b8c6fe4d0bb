package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/snake"
)

// drawSnake paints background, food, trail particles, then the body head last
// Segments fade toward the tail
func (t *Terminal) drawSnake(v viewport, s snake.View) {
	th := s.Theme
	bg := tcell.StyleDefault.Background(toColor(th.Background))
	fillRect(t.screen, v, v.x, v.y, v.w, v.h, ' ', bg)

	cw, ch := v.span(float64(s.Cell), true), v.span(float64(s.Cell), false)
	for _, f := range s.Food {
		cx, cy := v.cell(float64(f.X), float64(f.Y))
		fillRect(t.screen, v, cx, cy, cw, ch, '●', bg.Foreground(toColor(th.Food)))
	}

	drawParticles(t.screen, v, s.Particles, th.Background)

	n := len(s.Cells)
	for i := n - 1; i >= 0; i-- {
		c := s.Cells[i]
		fade := 1 - 0.6*float64(i)/float64(max(n, 1))
		color := th.Background.Blend(th.Snake, fade)
		r := '█'
		if i == 0 {
			r = '▓'
		}
		cx, cy := v.cell(float64(c.X), float64(c.Y))
		fillRect(t.screen, v, cx, cy, cw, ch, r, bg.Foreground(toColor(color)))
	}
}
