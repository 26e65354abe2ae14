package object

import (
	"time"

	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// Random is the randomness objects draw from. rng.Source implements it.
type Random interface {
	Range(lo, hi float64) float64
	Chance(p float64) bool
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	View    formation.Bounds // Half-extents of the visible area
	Spawner Spawner
	Objects []Object
	Rand    Random
}

// Surface is a drawing target in screen space: origin at the top-left of the
// view, +y down, one unit per world unit.
type Surface interface {
	FillRect(x, y, w, h float64)
	DrawRing(cx, cy, radius float64, segments int)
	SetFloat(x, y float64)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface Surface
	View    formation.Bounds
}

// ToScreen converts world coordinates (origin at the view centre, +y up) to
// surface coordinates.
func (ctx DrawContext) ToScreen(x, y float64) (float64, float64) {
	return x + ctx.View.HalfW, ctx.View.HalfH - y
}

// FillBox fills a world-space box.
func (ctx DrawContext) FillBox(b physics.Box) {
	x, y := ctx.ToScreen(b.X-b.W/2, b.Y+b.H/2)
	ctx.Surface.FillRect(x, y, b.W, b.H)
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next update cycle.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Collider is implemented by objects that take part in collisions.
type Collider interface {
	Bounds() physics.Box
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// CountEnemies returns the number of enemies that are not destroyed.
func CountEnemies(objects []Object) int {
	n := 0
	for _, obj := range objects {
		if e, ok := obj.(*Enemy); ok && !e.IsDestroyed() {
			n++
		}
	}
	return n
}
