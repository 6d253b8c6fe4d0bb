package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/engine"
	"github.com/lixenwraith/gesture-arcade/gesture"
	"github.com/lixenwraith/gesture-arcade/tower"
)

// drawTower paints the zone glow and ghost, settled blocks, the live block,
// particles, the ceiling line, and the hand cursor
func (t *Terminal) drawTower(v viewport, tv tower.View, snap *engine.Snapshot) {
	th := tv.Theme
	bgStyle := tcell.StyleDefault.Background(toColor(th.Background))
	fillRect(t.screen, v, v.x, v.y, v.w, v.h, ' ', bgStyle)

	// Zone column glow from the stack top down to the base
	glow := th.Background.BlendAlpha(core.RGBGlow, uint8(tv.Glow))
	zx, ztop := v.cell(tv.ZoneX, tv.TopHeight)
	_, zbase := v.cell(tv.ZoneX, tv.Base)
	fillRect(t.screen, v, zx, ztop, v.span(tv.Live.Width, true), max(zbase-ztop, 1), ' ',
		tcell.StyleDefault.Background(toColor(glow)))

	ghost := th.Background.Blend(core.RGBGhost, 0.5)
	t.drawBlock(v, tv.Ghost, '░', ghost, th.Background)

	for _, b := range tv.Settled {
		b.Y += b.SettleOffset
		t.drawBlock(v, b, '█', b.Color, th.Background)
	}

	if !tv.Over {
		live := tv.Live
		color := live.Color
		if live.Grabbed {
			color = color.Lighten(40)
		}
		t.drawBlock(v, live, '█', color, th.Background)
	}

	drawParticles(t.screen, v, tv.Particles, th.Background)

	_, cy := v.cell(0, tv.Ceiling)
	ceil := bgStyle.Foreground(toColor(core.RGBDanger))
	for x := v.x; x < v.x+v.w; x += 2 {
		if v.inside(x, cy) {
			t.screen.SetContent(x, cy, '┄', nil, ceil)
		}
	}

	if p, ok := gesture.NewMapper().Cursor(snap.Signal, tv.Width, tv.Height); ok {
		cx, cy := v.cell(p.X, p.Y)
		if v.inside(cx, cy) {
			t.screen.SetContent(cx, cy, '+', nil, bgStyle.Foreground(RgbHandMark))
		}
	}
}

// drawBlock fills a block's scaled extent, keeping it centred
func (t *Terminal) drawBlock(v viewport, b tower.Block, r rune, color, bg core.RGB) {
	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := b.Width*scale, b.Height*scale
	x := b.X - (w-b.Width)/2
	y := b.Y - (h-b.Height)/2

	cx, cy := v.cell(x, y)
	style := tcell.StyleDefault.Foreground(toColor(color)).Background(toColor(bg))
	fillRect(t.screen, v, cx, cy, v.span(w, true), v.span(h, false), r, style)
}
