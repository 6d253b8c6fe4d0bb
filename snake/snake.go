package snake

import (
	"errors"

	"github.com/lixenwraith/gesture-arcade/gesture"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// ErrSelfCollision is the terminal outcome when the head moves into the body
var ErrSelfCollision = errors.New("snake collided with itself")

// Snake owns the body, heading, and deferred growth on a wrap-around board
type Snake struct {
	Body          *Body
	Direction     gesture.Direction
	TargetLength  int
	GrowthPending int

	pending    gesture.Direction
	hasPending bool

	width, height, cell int
}

// NewSnake creates a snake on a width×height pixel board with the given cell size
func NewSnake(width, height, cell int) *Snake {
	s := &Snake{width: width, height: height, cell: cell}
	s.Reset()
	return s
}

// Reset restores the single-cell start body at board centre heading right
func (s *Snake) Reset() {
	start := vmath.Point{X: s.width / 2, Y: s.height / 2}
	s.Body = NewBody(start)
	s.Direction = gesture.Right
	s.TargetLength = parameter.SnakeInitialLength
	s.GrowthPending = 0
	s.pending = gesture.None
	s.hasPending = false
}

// RequestDirection buffers a heading change for the next tick
// Reversals of the current heading and invalid directions are dropped; returns whether buffered
func (s *Snake) RequestDirection(d gesture.Direction) bool {
	if !d.Valid() || d.IsReverseOf(s.Direction) {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// QueueGrowth defers one unit of length increase to the next Advance
func (s *Snake) QueueGrowth() {
	s.GrowthPending++
}

// Head returns the current head cell
func (s *Snake) Head() vmath.Point {
	return s.Body.Head()
}

// Advance moves the snake one cell
// Returns the head cell before the move; on ErrSelfCollision the body is left untouched
func (s *Snake) Advance() (vmath.Point, error) {
	if s.hasPending {
		s.Direction = s.pending
		s.hasPending = false
	}

	oldHead := s.Body.Head()
	next := oldHead.Add(s.Direction.Step(s.cell)).Wrap(s.width, s.height)

	growing := s.GrowthPending > 0
	vacating := !growing && s.Body.Len() >= s.TargetLength
	if s.Body.Contains(next) && !(vacating && next == s.Body.Tail() && s.Body.Len() > 1) {
		return oldHead, ErrSelfCollision
	}

	s.Body.PushHead(next)
	switch {
	case growing:
		s.GrowthPending--
		s.TargetLength++
	case s.Body.Len() > s.TargetLength:
		s.Body.PopTail()
	}
	return oldHead, nil
}
