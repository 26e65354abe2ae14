package formation

import "fmt"

// MaxMembers is the default number of enemies that share one template.
const MaxMembers = 2

// Allocation tuning, in world units.
const (
	spawnOffset    = 100.0 // Distance beyond the view edge where enemies appear
	minRadiusX     = 80.0
	maxRadiusX     = 150.0
	radiusY        = 100.0
	pivotTopMargin = 50.0
)

// Uniform is a continuous random source.
type Uniform interface {
	// Range returns a value uniformly distributed over [lo, hi).
	Range(lo, hi float64) float64
}

// Allocator hands out formation templates so that small squads of enemies fly
// the same path. It is not safe for concurrent use; a world owns one allocator
// and calls it from its simulation goroutine.
type Allocator struct {
	rng        Uniform
	maxMembers int
	current    *Template
	members    int
}

// NewAllocator creates an allocator that reuses each template for up to
// maxMembers enemies.
func NewAllocator(rng Uniform, maxMembers int) (*Allocator, error) {
	if rng == nil {
		return nil, fmt.Errorf("formation: allocator needs a random source")
	}
	if maxMembers < 1 {
		return nil, fmt.Errorf("formation: max members must be at least 1, got %d", maxMembers)
	}
	return &Allocator{
		rng:        rng,
		maxMembers: maxMembers,
	}, nil
}

// Allocate returns the current template while it still has room, otherwise a
// freshly randomized one bounded by the view half-extents.
func (a *Allocator) Allocate(view Bounds) Template {
	if a.current != nil && a.members < a.maxMembers {
		a.members++
		return *a.current
	}

	t := a.draw(view)
	a.current = &t
	a.members = 1
	return t
}

// draw randomizes a new template. Start is always on the right; the caller
// decides which side the enemy actually enters from.
func (a *Allocator) draw(view Bounds) Template {
	hSpan := view.HalfH + spawnOffset
	start := Point{
		X: view.HalfW + spawnOffset,
		Y: a.rng.Range(-hSpan, hSpan),
	}

	pivot := Point{
		X: a.rng.Range(-view.HalfW/2, view.HalfW/2),
		Y: a.rng.Range(0, view.HalfH*2/3-pivotTopMargin),
	}

	radius := Point{
		X: a.rng.Range(minRadiusX, maxRadiusX),
		Y: radiusY,
	}

	t, err := NewTemplate(start, pivot, radius, BaseSpeed)
	if err != nil {
		// The radius ranges and speed are positive constants.
		panic(err)
	}
	return t
}

// Members returns how many enemies have been given the current template.
func (a *Allocator) Members() int {
	return a.members
}

// Current returns the template being handed out, if any.
func (a *Allocator) Current() (Template, bool) {
	if a.current == nil {
		return Template{}, false
	}
	return *a.current, true
}

// Reset forgets the current template, e.g. when a new game starts.
func (a *Allocator) Reset() {
	a.current = nil
	a.members = 0
}
