package object

import (
	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/physics"
)

// Side tells who fired a laser.
type Side int

const (
	FromPlayer Side = iota
	FromEnemy
)

// Laser is a bolt travelling in a straight line.
type Laser struct {
	X, Y      float64 // Centre
	VX, VY    float64 // Unit direction
	W, H      float64 // Size
	Side      Side
	destroyed bool
}

// NewPlayerLaser creates a laser travelling up from (x, y).
func NewPlayerLaser(x, y float64) *Laser {
	return &Laser{
		X:    x,
		Y:    y,
		VY:   1,
		W:    PlayerLaserWidth,
		H:    PlayerLaserHeight,
		Side: FromPlayer,
	}
}

// NewEnemyLaser creates a laser travelling down from (x, y).
func NewEnemyLaser(x, y float64) *Laser {
	return &Laser{
		X:    x,
		Y:    y,
		VY:   -1,
		W:    EnemyLaserWidth,
		H:    EnemyLaserHeight,
		Side: FromEnemy,
	}
}

// MarkDestroyed marks the laser for removal.
func (l *Laser) MarkDestroyed() {
	l.destroyed = true
}

// IsDestroyed returns true if the laser hit something.
func (l *Laser) IsDestroyed() bool {
	return l.destroyed
}

// Update moves the laser and drops it once it is well off screen.
func (l *Laser) Update(ctx UpdateContext) (bool, error) {
	if l.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	l.X += l.VX * formation.BaseSpeed * dt
	l.Y += l.VY * formation.BaseSpeed * dt

	return physics.Outside(l.X, l.Y, ctx.View.HalfW, ctx.View.HalfH, LaserMargin), nil
}

// Bounds returns the laser's collision box.
func (l *Laser) Bounds() physics.Box {
	return physics.Box{X: l.X, Y: l.Y, W: l.W, H: l.H}
}

// Draw renders the laser.
func (l *Laser) Draw(ctx DrawContext) error {
	ctx.FillBox(l.Bounds())
	return nil
}
