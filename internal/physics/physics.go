// Package physics provides vector math, collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CircleTouches checks whether the circle (a, r1) touches the circle (b, r2).
// Tangent circles count as touching.
func CircleTouches(r1, r2 float64, a, b Vec[float64]) bool {
	d := b.Sub(a).Fold(math.Hypot)
	return d-(r1+r2) <= 0
}

// Clamp restricts v to [lo, hi] and reports whether it had to move.
func Clamp(v, lo, hi float64) (float64, bool) {
	if v < lo {
		return lo, true
	}
	if v > hi {
		return hi, true
	}
	return v, false
}
