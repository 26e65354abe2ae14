package object

import "math"

// Explosion animation.
const (
	ExplosionFrames    = 16
	explosionFrameTime = 0.05 // Seconds per frame
	explosionMaxRadius = EnemyWidth / 2
	explosionParticles = 12
)

// Explosion is a ring that grows for a fixed number of frames.
type Explosion struct {
	X, Y    float64
	elapsed float64
}

// NewExplosion creates an explosion centred on (x, y).
func NewExplosion(x, y float64) *Explosion {
	return &Explosion{X: x, Y: y}
}

// SpawnExplosion adds an explosion and a burst of debris at (x, y).
func SpawnExplosion(x, y float64, rnd Random, spawner Spawner) {
	if spawner == nil {
		return
	}
	spawner.Spawn(NewExplosion(x, y))
	if rnd != nil {
		SpawnDebris(x, y, explosionParticles, 150, 0.6, rnd, spawner)
	}
}

// Frame returns the index of the current animation frame.
func (e *Explosion) Frame() int {
	return int(e.elapsed / explosionFrameTime)
}

// Update advances the animation and removes the explosion after its last frame.
func (e *Explosion) Update(ctx UpdateContext) (bool, error) {
	e.elapsed += ctx.Delta.Seconds()
	return e.Frame() >= ExplosionFrames, nil
}

// Draw renders the current frame as a ring.
func (e *Explosion) Draw(ctx DrawContext) error {
	frame := min(e.Frame(), ExplosionFrames-1)
	radius := explosionMaxRadius * float64(frame+1) / ExplosionFrames
	x, y := ctx.ToScreen(e.X, e.Y)
	segments := max(8, int(math.Ceil(radius/2)))
	ctx.Surface.DrawRing(x, y, radius, segments)
	return nil
}
