// Package gesture turns a normalized hand vector into game input
//
// Two readings of the same signal exist: a discrete 4-way direction for the snake
// and a continuous cursor for the tower. Neither reading fails; malformed or missing
// input maps to "no signal" and callers keep their previous state.
package gesture

import (
	"math"

	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Signal is one tick of hand input in the camera's normalized [0,1] space
type Signal struct {
	Present bool
	Wrist   vmath.Vec2
	Tip     vmath.Vec2
}

// NoSignal is the tick value when no hand was detected or the capture failed
var NoSignal = Signal{}

// FromLandmarks builds a present signal from wrist and index fingertip positions
func FromLandmarks(wrist, tip vmath.Vec2) Signal {
	return Signal{Present: true, Wrist: wrist, Tip: tip}
}

// Delta returns fingertip minus wrist
func (s Signal) Delta() vmath.Vec2 {
	return s.Tip.Sub(s.Wrist)
}

// Mapper owns only the dead-zone threshold
type Mapper struct {
	DeadZone float64
}

// NewMapper returns a mapper with the default dead-zone
func NewMapper() Mapper {
	return Mapper{DeadZone: parameter.GestureDeadZone}
}

// Direction maps (dx, dy) to a cardinal direction
// The dominant axis wins (ties go vertical); its magnitude must exceed the dead-zone
// Returns false for ambiguous, too-small, or non-finite input
func (m Mapper) Direction(dx, dy float64) (Direction, bool) {
	if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return None, false
	}
	if math.Abs(dx) > math.Abs(dy) {
		switch {
		case dx > m.DeadZone:
			return Right, true
		case dx < -m.DeadZone:
			return Left, true
		}
		return None, false
	}
	switch {
	case dy > m.DeadZone:
		return Down, true
	case dy < -m.DeadZone:
		return Up, true
	}
	return None, false
}

// SignalDirection reads the discrete direction of a whole signal
func (m Mapper) SignalDirection(s Signal) (Direction, bool) {
	if !s.Present {
		return None, false
	}
	d := s.Delta()
	return m.Direction(d.X, d.Y)
}

// Cursor scales the normalized fingertip into a width×height coordinate space
// Returns false when no hand is present or the position is not finite
func (m Mapper) Cursor(s Signal, width, height float64) (vmath.Vec2, bool) {
	if !s.Present || !s.Tip.Finite() {
		return vmath.Vec2{}, false
	}
	return s.Tip.Mul(vmath.Vec2{X: width, Y: height}), true
}
