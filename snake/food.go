package snake

import (
	"math/rand/v2"

	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Food is the set of active food cells, kept in spawn order for stable rendering
type Food struct {
	cells []vmath.Point
	set   map[vmath.Point]struct{}

	width, height, cell, margin int
	chance                      float64

	scratch []vmath.Point
}

// NewFood creates an empty food set for a width×height board
func NewFood(width, height, cell int) *Food {
	return &Food{
		set:    make(map[vmath.Point]struct{}),
		width:  width,
		height: height,
		cell:   cell,
		margin: parameter.FoodBorderMargin,
		chance: parameter.FoodSpawnChance,
	}
}

// Len returns the number of active food cells
func (f *Food) Len() int {
	return len(f.cells)
}

// Has reports whether p holds food
func (f *Food) Has(p vmath.Point) bool {
	_, ok := f.set[p]
	return ok
}

// Reset removes all food
func (f *Food) Reset() {
	f.cells = f.cells[:0]
	clear(f.set)
}

// Consume removes food at p; returns false when there was none
func (f *Food) Consume(p vmath.Point) bool {
	if _, ok := f.set[p]; !ok {
		return false
	}
	delete(f.set, p)
	for i, c := range f.cells {
		if c == p {
			f.cells = append(f.cells[:i], f.cells[i+1:]...)
			break
		}
	}
	return true
}

// Spawn adds one food cell uniformly from cells free of body and food
// Fires when no food exists, otherwise with the configured probability
// A full board is a no-op; returns the new cell and whether one was added
func (f *Food) Spawn(rng *rand.Rand, body *Body) (vmath.Point, bool) {
	if len(f.cells) > 0 && rng.Float64() >= f.chance {
		return vmath.Point{}, false
	}

	free := f.scratch[:0]
	for x := f.margin; x < f.width-f.margin; x += f.cell {
		for y := f.margin; y < f.height-f.margin; y += f.cell {
			p := vmath.Point{X: x, Y: y}
			if body.Contains(p) || f.Has(p) {
				continue
			}
			free = append(free, p)
		}
	}
	f.scratch = free
	if len(free) == 0 {
		return vmath.Point{}, false
	}

	p := free[rng.IntN(len(free))]
	f.cells = append(f.cells, p)
	f.set[p] = struct{}{}
	return p, true
}

// Place adds food at p directly, ignoring spawn gating
func (f *Food) Place(p vmath.Point) {
	if f.Has(p) {
		return
	}
	f.cells = append(f.cells, p)
	f.set[p] = struct{}{}
}

// AppendTo copies food cells onto dst
func (f *Food) AppendTo(dst []vmath.Point) []vmath.Point {
	return append(dst, f.cells...)
}
