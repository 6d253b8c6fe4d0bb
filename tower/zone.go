package tower

import "github.com/lixenwraith/gesture-arcade/parameter"

// Pulse is the bouncing glow alpha of the placement zone
type Pulse struct {
	Alpha int
	dir   int
}

// Step advances the glow, reversing at either bound
func (p *Pulse) Step() {
	if p.dir == 0 {
		p.dir = 1
	}
	p.Alpha += p.dir * parameter.ZonePulseStep
	if p.Alpha > parameter.ZonePulseMax || p.Alpha < 0 {
		p.dir = -p.dir
	}
	p.Alpha = min(max(p.Alpha, 0), parameter.ZonePulseMax)
}

// Zone is the placement target column
type Zone struct {
	X float64 // Left edge; width follows the live block
}

// CenterX returns the zone midpoint for a block of width w
func (z Zone) CenterX(w float64) float64 {
	return z.X + w/2
}

// Accepts applies the inclusive snap tolerance to a block against the stack top
func (z Zone) Accepts(b *Block, s *Stack) bool {
	dx := b.Center().X - z.CenterX(b.Width)
	dy := b.Y - s.TargetTop(b.Height)
	return (dx <= parameter.SnapToleranceX && dx >= -parameter.SnapToleranceX) &&
		(dy <= parameter.SnapToleranceY && dy >= -parameter.SnapToleranceY)
}
