package common

import "math"

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Direction returns the unit vector from (fromX, fromY) toward (toX, toY).
// Coincident points are treated as distance 1, which yields a zero vector.
func Direction(fromX, fromY, toX, toY float64) (float64, float64) {
	dx := toX - fromX
	dy := toY - fromY
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		mag = 1
	}
	return dx / mag, dy / mag
}

