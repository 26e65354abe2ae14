package loop

import (
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// collectCollidables extracts lasers and enemies from the object list.
// Uses pre-allocated slices to avoid allocations.
func collectCollidables(objects []object.Object, lasers *[]*object.Laser, enemies *[]*object.Enemy) {
	*lasers = (*lasers)[:0]
	*enemies = (*enemies)[:0]

	for _, obj := range objects {
		switch o := obj.(type) {
		case *object.Laser:
			if !o.IsDestroyed() {
				*lasers = append(*lasers, o)
			}
		case *object.Enemy:
			if !o.IsDestroyed() {
				*enemies = append(*enemies, o)
			}
		}
	}
}

// checkCollisions detects and handles all collisions between objects.
func (w *World) checkCollisions() {
	collectCollidables(w.Objects, &w.lasers, &w.enemies)

	w.checkLaserEnemyCollisions()
	if w.Player != nil && !w.Player.IsDestroyed() {
		w.checkLaserPlayerCollisions()
	}
}

// checkLaserEnemyCollisions handles player lasers hitting enemies. Each laser
// takes out at most one enemy.
func (w *World) checkLaserEnemyCollisions() {
	if len(w.enemies) == 0 {
		return
	}

	w.grid.Clear()
	for i, e := range w.enemies {
		w.grid.Insert(e.X, e.Y, i)
	}

	for _, l := range w.lasers {
		if l.Side != object.FromPlayer {
			continue
		}
		box := l.Bounds()
		w.grid.QueryAround(l.X, l.Y, func(i int) bool {
			e := w.enemies[i]
			if e.IsDestroyed() || !physics.Overlap(box, e.Bounds()) {
				return false
			}
			l.MarkDestroyed()
			e.MarkDestroyed()
			w.Score += config.ScoreEnemy
			object.SpawnExplosion(e.X, e.Y, w.rng, w)
			return true
		})
	}
}

// checkLaserPlayerCollisions handles enemy lasers hitting the ship.
func (w *World) checkLaserPlayerCollisions() {
	box := w.Player.Bounds()
	for _, l := range w.lasers {
		if l.Side != object.FromEnemy || l.IsDestroyed() {
			continue
		}
		if physics.Overlap(l.Bounds(), box) {
			l.MarkDestroyed()
			w.killPlayer()
			return
		}
	}
}
