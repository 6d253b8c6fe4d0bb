package vmath

// Ease moves value a fraction of the way toward target: value + (target-value)*rate
// Exponential decay never reaches target exactly for 0 < rate < 1
func Ease(value, target, rate float64) float64 {
	return value + (target-value)*rate
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns |v| without the math import at call sites
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
