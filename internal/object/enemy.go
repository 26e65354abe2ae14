package object

import (
	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/physics"
)

// Enemy flies a formation path: it eases onto its ellipse and then circles it.
type Enemy struct {
	X, Y      float64 // Centre
	Formation formation.State
	Phase     formation.Phase // Phase reported by the last update
	destroyed bool
}

// NewEnemy places an enemy at the template's start point.
func NewEnemy(t formation.Template) *Enemy {
	return &Enemy{
		X:         t.Start.X,
		Y:         t.Start.Y,
		Formation: formation.NewState(t),
	}
}

// Update advances the enemy along its formation path.
func (e *Enemy) Update(ctx UpdateContext) (bool, error) {
	if e.destroyed {
		return true, nil
	}

	m := e.Formation.Advance(formation.Point{X: e.X, Y: e.Y}, ctx.Delta.Seconds())
	e.X, e.Y = m.Position.X, m.Position.Y
	e.Phase = m.Phase

	return false, nil
}

// Fire drops a laser from just below the enemy.
func (e *Enemy) Fire(spawner Spawner) {
	if spawner == nil || e.destroyed {
		return
	}
	spawner.Spawn(NewEnemyLaser(e.X, e.Y-15))
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() physics.Box {
	return physics.Box{X: e.X, Y: e.Y, W: EnemyWidth, H: EnemyHeight}
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy was shot down.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Draw renders the enemy as a hull with two cannons pointing down.
func (e *Enemy) Draw(ctx DrawContext) error {
	hull := physics.Box{X: e.X, Y: e.Y + EnemyHeight/6, W: EnemyWidth, H: EnemyHeight * 2 / 3}
	ctx.FillBox(hull)

	gun := EnemyWidth / 8
	for _, dx := range []float64{-EnemyWidth/2 + gun, EnemyWidth/2 - gun} {
		ctx.FillBox(physics.Box{X: e.X + dx, Y: e.Y - EnemyHeight/3, W: gun, H: EnemyHeight / 3})
	}
	return nil
}
