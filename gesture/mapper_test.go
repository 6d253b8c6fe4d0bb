package gesture

import (
	"math"
	"testing"

	"github.com/lixenwraith/gesture-arcade/vmath"
)

func TestDirectionMapping(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
		ok     bool
	}{
		{"right", 0.3, 0.05, Right, true},
		{"left", -0.3, 0.1, Left, true},
		{"down", 0.05, 0.25, Down, true},
		{"up", -0.05, -0.25, Up, true},
		{"horizontal inside dead-zone", 0.08, 0.01, None, false},
		{"vertical inside dead-zone", 0.01, -0.1, None, false},
		{"exact dead-zone rejected", 0.1, 0, None, false},
		{"tie goes vertical", 0.2, 0.2, Down, true},
		{"zero", 0, 0, None, false},
		{"nan", math.NaN(), 0.5, None, false},
		{"inf", math.Inf(1), 0, None, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := m.Direction(tc.dx, tc.dy)
			if ok != tc.ok {
				t.Errorf("Expected ok=%v, got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSignalDirectionNoHand(t *testing.T) {
	m := NewMapper()
	if _, ok := m.SignalDirection(NoSignal); ok {
		t.Error("Expected no direction without a hand")
	}

	s := FromLandmarks(vmath.Vec2{X: 0.5, Y: 0.5}, vmath.Vec2{X: 0.8, Y: 0.5})
	d, ok := m.SignalDirection(s)
	if !ok || d != Right {
		t.Errorf("Expected right, got %v (ok=%v)", d, ok)
	}
}

func TestCursorScaling(t *testing.T) {
	m := NewMapper()
	s := FromLandmarks(vmath.Vec2{}, vmath.Vec2{X: 0.5, Y: 0.25})

	c, ok := m.Cursor(s, 1024, 768)
	if !ok {
		t.Fatal("Expected cursor for present hand")
	}
	if c != (vmath.Vec2{X: 512, Y: 192}) {
		t.Errorf("Expected (512,192), got %v", c)
	}

	if _, ok := m.Cursor(NoSignal, 1024, 768); ok {
		t.Error("Expected no cursor without a hand")
	}

	bad := FromLandmarks(vmath.Vec2{}, vmath.Vec2{X: math.NaN(), Y: 0})
	if _, ok := m.Cursor(bad, 1024, 768); ok {
		t.Error("Expected no cursor for NaN fingertip")
	}
}

func TestDirectionReverse(t *testing.T) {
	if !Left.IsReverseOf(Right) {
		t.Error("Expected left to reverse right")
	}
	if Up.IsReverseOf(Right) {
		t.Error("Expected up not to reverse right")
	}
	if None.IsReverseOf(None) {
		t.Error("Expected none never to be a reversal")
	}
	if Right.Step(20) != (vmath.Point{X: 20, Y: 0}) {
		t.Errorf("Expected step (20,0), got %v", Right.Step(20))
	}
}
