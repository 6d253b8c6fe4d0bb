package snake

import (
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Body is the ordered snake body, head at index 0
// Backed by a growable ring buffer for O(1) head push and tail pop, with an occupancy
// count per cell so membership tests do not scan
type Body struct {
	ring []vmath.Point
	head int // ring index of the head
	n    int
	occ  map[vmath.Point]int
}

// NewBody creates a body from cells ordered head first
func NewBody(cells ...vmath.Point) *Body {
	b := &Body{
		ring: make([]vmath.Point, max(16, len(cells))),
		occ:  make(map[vmath.Point]int, len(cells)),
	}
	for i := len(cells) - 1; i >= 0; i-- {
		b.PushHead(cells[i])
	}
	return b
}

// Len returns the number of cells
func (b *Body) Len() int {
	return b.n
}

// Head returns the head cell; zero Point when empty
func (b *Body) Head() vmath.Point {
	if b.n == 0 {
		return vmath.Point{}
	}
	return b.ring[b.head]
}

// Tail returns the last cell; zero Point when empty
func (b *Body) Tail() vmath.Point {
	if b.n == 0 {
		return vmath.Point{}
	}
	return b.At(b.n - 1)
}

// At returns the i-th cell counted from the head
func (b *Body) At(i int) vmath.Point {
	return b.ring[(b.head+i)%len(b.ring)]
}

// Contains reports whether any segment occupies p
func (b *Body) Contains(p vmath.Point) bool {
	return b.occ[p] > 0
}

// PushHead prepends a new head cell
func (b *Body) PushHead(p vmath.Point) {
	if b.n == len(b.ring) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.ring)) % len(b.ring)
	b.ring[b.head] = p
	b.n++
	b.occ[p]++
}

// PopTail removes and returns the last cell
func (b *Body) PopTail() (vmath.Point, bool) {
	if b.n == 0 {
		return vmath.Point{}, false
	}
	p := b.Tail()
	b.n--
	if b.occ[p] <= 1 {
		delete(b.occ, p)
	} else {
		b.occ[p]--
	}
	return p, true
}

// AppendTo copies cells head first onto dst
func (b *Body) AppendTo(dst []vmath.Point) []vmath.Point {
	for i := 0; i < b.n; i++ {
		dst = append(dst, b.At(i))
	}
	return dst
}

// grow doubles capacity and unrolls the ring so the head sits at index 0
func (b *Body) grow() {
	next := make([]vmath.Point, len(b.ring)*2)
	for i := 0; i < b.n; i++ {
		next[i] = b.At(i)
	}
	b.ring = next
	b.head = 0
}
