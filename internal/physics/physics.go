// Package physics provides distance utilities for homing and proximity checks.
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

// WithinRange checks if two points are within dist of each other.
func WithinRange(x1, y1, x2, y2, dist float64) bool {
	return DistanceSquared(x1, y1, x2, y2) <= dist*dist
}
