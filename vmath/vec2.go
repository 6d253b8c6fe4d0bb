package vmath

import "math"

// Vec2 is a float position or velocity in pixel space
type Vec2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul multiplies component-wise (axis-independent scaling)
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Magnitude returns the Euclidean length
func (v Vec2) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 { return a.Sub(b).Magnitude() }

// Finite reports whether both components are real numbers
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
