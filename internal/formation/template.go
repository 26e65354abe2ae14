// Package formation assigns enemies elliptical flight paths and advances them
// along those paths one tick at a time.
package formation

import (
	"errors"
	"fmt"
	"math"
)

// BaseSpeed is the travel speed shared by every formation, in world units per second.
const BaseSpeed = 500.0

// Point is a position or a pair of extents in world units (+y up).
type Point struct {
	X, Y float64
}

// Bounds holds the half-extents of the current view.
type Bounds struct {
	HalfW, HalfH float64
}

var (
	// ErrInvalidRadius is returned for a template with a zero or negative semi-axis.
	ErrInvalidRadius = errors.New("formation: radius must be positive on both axes")
	// ErrInvalidSpeed is returned for a template with a zero or negative speed.
	ErrInvalidSpeed = errors.New("formation: speed must be positive")
)

// Template describes one elliptical flight path. It is a plain value: every
// enemy flying the path holds its own copy.
type Template struct {
	Start  Point   // Spawn point
	Pivot  Point   // Ellipse centre
	Radius Point   // Semi-axis lengths
	Speed  float64 // World units per second
	Angle  float64 // Initial phase angle, from Pivot towards Start
}

// NewTemplate builds a template and computes its initial angle.
// Start does not have to lie on the ellipse.
func NewTemplate(start, pivot, radius Point, speed float64) (Template, error) {
	if !(radius.X > 0) || !(radius.Y > 0) {
		return Template{}, fmt.Errorf("%w: got (%g, %g)", ErrInvalidRadius, radius.X, radius.Y)
	}
	if !(speed > 0) {
		return Template{}, fmt.Errorf("%w: got %g", ErrInvalidSpeed, speed)
	}
	return Template{
		Start:  start,
		Pivot:  pivot,
		Radius: radius,
		Speed:  speed,
		Angle:  InitialAngle(start, pivot),
	}, nil
}

// InitialAngle returns the direction from pivot to start.
func InitialAngle(start, pivot Point) float64 {
	return math.Atan2(start.Y-pivot.Y, start.X-pivot.X)
}

// Mirrored returns a copy with Start reflected to the other side of the view.
// The angle is left as allocated, so the enemy eases across onto the curve.
func (t Template) Mirrored() Template {
	t.Start.X = -t.Start.X
	return t
}
