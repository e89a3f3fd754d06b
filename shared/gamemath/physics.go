package gamemath

// Sign returns -1, 0 or 1 for the direction of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampFallSpeed caps a downward velocity at max. A non-positive max
// leaves the velocity unbounded.
func ClampFallSpeed(speedY, max float64) float64 {
	if max > 0 && speedY > max {
		return max
	}
	return speedY
}
