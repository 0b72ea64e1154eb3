package sanitizer

import "math"

// ClampFloat bounds v to [lo, hi]. NaN maps to fallback.
func ClampFloat(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
