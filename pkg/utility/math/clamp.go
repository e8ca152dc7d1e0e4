package math

import gomath "math"

func Clamp(v, min, max float64) float64 {
	if v > max {
		return max
	} else if v < min {
		return min
	} else {
		return v
	}
}

// Finite maps NaN and infinities to zero.
func Finite(v float64) float64 {
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return 0
	}
	return v
}
