package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBSpark  = RGB{255, 255, 100} // tower success burst
	RGBGhost  = RGB{180, 180, 180} // placement zone fill
	RGBGlow   = RGB{100, 255, 100} // placement zone pulse
	RGBDanger = RGB{255, 0, 0}
)

// Blend performs alpha blending: result = src*alpha + c*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// BlendAlpha blends src over c using an 8-bit alpha (0 keeps c, 255 yields src)
func (c RGB) BlendAlpha(src RGB, alpha uint8) RGB {
	return c.Blend(src, float64(alpha)/255.0)
}

// Lighten adds a flat amount to every channel with clamping (cell borders)
func (c RGB) Lighten(amount uint8) RGB {
	return c.Add(RGB{amount, amount, amount})
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
