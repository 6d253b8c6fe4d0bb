package gesture

import "github.com/lixenwraith/gesture-arcade/vmath"

// Direction is a unit step on the grid: one of (±1,0), (0,±1), or the zero value for none
type Direction struct {
	DX, DY int
}

// Cardinal directions (screen space, Y grows downward)
var (
	None  = Direction{}
	Right = Direction{1, 0}
	Left  = Direction{-1, 0}
	Down  = Direction{0, 1}
	Up    = Direction{0, -1}
)

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return Direction{-d.DX, -d.DY}
}

// IsReverseOf reports whether d points exactly opposite o
func (d Direction) IsReverseOf(o Direction) bool {
	return d != None && d == o.Reverse()
}

// Valid reports whether d is one of the four cardinal unit vectors
func (d Direction) Valid() bool {
	switch d {
	case Right, Left, Down, Up:
		return true
	}
	return false
}

// Step returns the pixel offset of one move for the given cell size
func (d Direction) Step(cell int) vmath.Point {
	return vmath.Point{X: d.DX * cell, Y: d.DY * cell}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}
