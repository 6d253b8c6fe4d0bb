package tower

import (
	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Block is a rectangle in tower pixel space, X/Y being its top-left corner
// Rotation (degrees) and Scale are cosmetic and ease toward their targets every tick
type Block struct {
	X, Y          float64
	Width, Height float64
	Color         core.RGB

	Rotation, TargetRotation float64
	Scale, TargetScale       float64

	Attempts int // Times released outside the zone
	Grabbed  bool

	// SettleOffset is a render-only downward nudge accumulated after settling
	SettleOffset float64
}

// NewBlock creates an upright, unscaled block at (x, y)
func NewBlock(x, y, width, height float64, color core.RGB) Block {
	return Block{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Color:       color,
		Scale:       1,
		TargetScale: 1,
	}
}

// Contains reports whether p lies within the block bounds, edges inclusive
func (b *Block) Contains(p vmath.Vec2) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Holds reports whether a held block stays in hand with the cursor at p
// Bounds are widened by BlockReleaseMargin so cell-quantized pointers do not drop it on every row step
func (b *Block) Holds(p vmath.Vec2) bool {
	m := parameter.BlockReleaseMargin
	return p.X >= b.X-m && p.X <= b.X+b.Width+m && p.Y >= b.Y-m && p.Y <= b.Y+b.Height+m
}

// Center returns the midpoint of the block
func (b *Block) Center() vmath.Vec2 {
	return vmath.Vec2{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// CenterOn moves the block so its centre sits at p
func (b *Block) CenterOn(p vmath.Vec2) {
	b.X = p.X - b.Width/2
	b.Y = p.Y - b.Height/2
}

// Grab marks the block held and sets the tilt/enlarge targets
func (b *Block) Grab(tilt float64) {
	b.Grabbed = true
	b.TargetRotation = tilt
	b.TargetScale = parameter.BlockGrabScale
}

// Release drops a held block outside the zone, counting one attempt
func (b *Block) Release() {
	b.Grabbed = false
	b.Attempts++
	b.TargetRotation = 0
	b.TargetScale = 1
}

// Ease moves rotation and scale one step toward their targets
func (b *Block) Ease() {
	b.Rotation = vmath.Ease(b.Rotation, b.TargetRotation, parameter.BlockEaseRate)
	b.Scale = vmath.Ease(b.Scale, b.TargetScale, parameter.BlockEaseRate)
}

// BlockWidth is the spawn width at a level for a per-level shrink amount
func BlockWidth(level int, decrease float64) float64 {
	return max(parameter.BlockMinWidth, parameter.BlockDefaultWidth-float64(level-1)*decrease)
}
