package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampLow bounds v from below only.
func ClampLow(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}

// Normalize maps v from [lo, hi] onto [0, 1]. The result is not clamped.
func Normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

// Denormalize is the inverse of Normalize.
func Denormalize(n, lo, hi float64) float64 {
	return lo + n*(hi-lo)
}

func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
