// Package physics provides collision detection utilities.
package physics

import "math"

// Box is an axis-aligned bounding box given by its centre and full size.
type Box struct {
	X, Y float64 // Centre
	W, H float64 // Full width and height
}

// Overlap reports whether two boxes intersect. Boxes that only touch along an
// edge do not overlap.
func Overlap(a, b Box) bool {
	return math.Abs(a.X-b.X)*2 < a.W+b.W &&
		math.Abs(a.Y-b.Y)*2 < a.H+b.H
}

// Outside reports whether a point lies beyond the half-extents plus margin.
func Outside(x, y, halfW, halfH, margin float64) bool {
	return x > halfW+margin || x < -halfW-margin ||
		y > halfH+margin || y < -halfH-margin
}
