package vmath

import (
	"math"
	"testing"
)

func TestModNegative(t *testing.T) {
	tests := []struct {
		a, m, want int
	}{
		{1280, 1280, 0},
		{-20, 1280, 1260},
		{20, 1280, 20},
		{-1300, 1280, 1260},
		{5, 0, 5},
	}
	for _, tc := range tests {
		if got := Mod(tc.a, tc.m); got != tc.want {
			t.Errorf("Mod(%d, %d): expected %d, got %d", tc.a, tc.m, tc.want, got)
		}
	}
}

func TestPointWrap(t *testing.T) {
	p := Point{200, 100}.Wrap(200, 200)
	if p != (Point{0, 100}) {
		t.Errorf("Expected wrap to (0,100), got %v", p)
	}
	p = Point{0, -20}.Wrap(200, 200)
	if p != (Point{0, 180}) {
		t.Errorf("Expected wrap to (0,180), got %v", p)
	}
}

func TestEaseConverges(t *testing.T) {
	v := 0.0
	for i := 0; i < 100; i++ {
		v = Ease(v, 10, 0.1)
		if v >= 10 {
			t.Fatalf("Ease reached target exactly at tick %d", i)
		}
	}
	if math.Abs(v-10) > 1e-3 {
		t.Errorf("Expected convergence within 1e-3 after 100 ticks, got %f", v)
	}
}

func TestFinite(t *testing.T) {
	if !(Vec2{1, 2}).Finite() {
		t.Error("Expected finite vector")
	}
	if (Vec2{math.NaN(), 0}).Finite() {
		t.Error("Expected NaN to be non-finite")
	}
	if (Vec2{0, math.Inf(-1)}).Finite() {
		t.Error("Expected Inf to be non-finite")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Vec2{0, 0}, Vec2{3, 4}); d != 5 {
		t.Errorf("Expected 5, got %f", d)
	}
}
