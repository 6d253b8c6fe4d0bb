package core

import "testing"

func TestBlendEndpoints(t *testing.T) {
	base := RGB{10, 20, 30}
	src := RGB{200, 100, 50}

	if got := base.Blend(src, 0); got != base {
		t.Errorf("Expected %v at alpha 0, got %v", base, got)
	}
	if got := base.Blend(src, 1); got != src {
		t.Errorf("Expected %v at alpha 1, got %v", src, got)
	}
	if got := base.BlendAlpha(src, 255); got != src {
		t.Errorf("Expected %v at alpha 255, got %v", src, got)
	}
}

func TestLightenClamps(t *testing.T) {
	got := RGB{0, 230, 255}.Lighten(50)
	want := RGB{50, 255, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestScale(t *testing.T) {
	c := RGB{100, 200, 50}
	if got := c.Scale(0); got != RGBBlack {
		t.Errorf("Expected black at factor 0, got %v", got)
	}
	if got := c.Scale(0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("Expected half intensity, got %v", got)
	}
}
