package vmath

// Point is an integer grid position in pixel units (cell-aligned)
type Point struct {
	X, Y int
}

// Add returns p+o
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Scale multiplies both components by s
func (p Point) Scale(s int) Point { return Point{p.X * s, p.Y * s} }

// Center returns the midpoint of the square cell anchored at p
func (p Point) Center(cell int) Vec2 {
	half := float64(cell) / 2
	return Vec2{float64(p.X) + half, float64(p.Y) + half}
}

// Wrap folds p into [0,w)×[0,h) with Euclidean modulo
// Negative coordinates wrap to the far edge instead of going negative
func (p Point) Wrap(w, h int) Point {
	return Point{Mod(p.X, w), Mod(p.Y, h)}
}

// Mod is the Euclidean modulo; result is in [0,m) for m > 0
func Mod(a, m int) int {
	if m <= 0 {
		return a
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
