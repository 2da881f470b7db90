package appointment

import "math"

// ValidRating accepts 0–5 in half-star steps.
func ValidRating(r float64) bool {
	if r < 0 || r > 5 {
		return false
	}
	doubled := r * 2
	return doubled == math.Trunc(doubled)
}
