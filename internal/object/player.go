package object

import (
	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/physics"
)

// Player is the ship at the bottom of the screen.
type Player struct {
	X, Y   float64 // Centre
	VX, VY float64 // Unit direction per axis: -1, 0 or 1

	// Shooting
	FireRate     float64 // Minimum seconds between shots
	fireCooldown float64 // Time until next shot allowed

	destroyed bool
}

// playerFloatGap is the gap between the ship and the bottom of the view.
const playerFloatGap = 5.0

// NewPlayer creates a ship centred horizontally just above the bottom edge.
func NewPlayer(view formation.Bounds) *Player {
	return &Player{
		X:        0,
		Y:        -view.HalfH + PlayerHeight/2 + playerFloatGap,
		FireRate: 0.15, // 6-7 volleys per second
	}
}

// Update reads the arrow keys, moves the ship and fires.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	if p.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	p.VX = axis(ctx.Input.Left, ctx.Input.Right)
	p.VY = axis(ctx.Input.Down, ctx.Input.Up)

	p.X += p.VX * formation.BaseSpeed * dt
	p.Y += p.VY * formation.BaseSpeed * dt

	// Keep the whole ship on screen.
	maxX := ctx.View.HalfW - PlayerWidth/2
	maxY := ctx.View.HalfH - PlayerHeight/2
	p.X = min(max(p.X, -maxX), maxX)
	p.Y = min(max(p.Y, -maxY), maxY)

	p.fireCooldown -= dt
	if ctx.Input.Fire && p.fireCooldown <= 0 && ctx.Spawner != nil {
		p.fireCooldown = p.FireRate

		// One laser from each wing.
		offset := PlayerWidth/2 - 5
		ctx.Spawner.Spawn(NewPlayerLaser(p.X+offset, p.Y+15))
		ctx.Spawner.Spawn(NewPlayerLaser(p.X-offset, p.Y+15))
	}

	return false, nil
}

// axis maps a pair of opposing keys to -1, 0 or 1. The negative key wins.
func axis(negative, positive bool) float64 {
	switch {
	case negative:
		return -1
	case positive:
		return 1
	default:
		return 0
	}
}

// Bounds returns the ship's collision box.
func (p *Player) Bounds() physics.Box {
	return physics.Box{X: p.X, Y: p.Y, W: PlayerWidth, H: PlayerHeight}
}

// MarkDestroyed marks the ship for removal.
func (p *Player) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the ship was hit.
func (p *Player) IsDestroyed() bool {
	return p.destroyed
}

// Draw renders the ship as a wide hull with a cockpit on top.
func (p *Player) Draw(ctx DrawContext) error {
	hull := physics.Box{X: p.X, Y: p.Y - PlayerHeight/4, W: PlayerWidth, H: PlayerHeight / 2}
	cockpit := physics.Box{X: p.X, Y: p.Y + PlayerHeight/4, W: PlayerWidth / 3, H: PlayerHeight / 2}
	ctx.FillBox(hull)
	ctx.FillBox(cockpit)
	return nil
}
