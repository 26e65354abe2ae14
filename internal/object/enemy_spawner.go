package object

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/invaders/internal/formation"
)

// EnemySpawner adds one enemy per interval while fewer than max are alive.
type EnemySpawner struct {
	alloc    *formation.Allocator
	max      int
	interval time.Duration
	elapsed  time.Duration
	logger   *log.Logger
}

// NewEnemySpawner creates a spawner drawing formations from alloc.
// A nil logger falls back to the package default.
func NewEnemySpawner(alloc *formation.Allocator, max int, interval time.Duration, logger *log.Logger) *EnemySpawner {
	if max < 0 {
		max = 0
	}
	if logger == nil {
		logger = log.Default()
	}
	return &EnemySpawner{
		alloc:    alloc,
		max:      max,
		interval: interval,
		logger:   logger,
	}
}

// Update spawns an enemy at the edge of the view once per interval.
func (s *EnemySpawner) Update(ctx UpdateContext) (bool, error) {
	if s.max == 0 || ctx.Spawner == nil {
		return false, nil
	}

	s.elapsed += ctx.Delta
	if s.elapsed < s.interval {
		return false, nil
	}
	// One spawn per tick of the interval, however long the frame was.
	s.elapsed %= s.interval

	if CountEnemies(ctx.Objects) >= s.max {
		return false, nil
	}

	t := s.alloc.Allocate(ctx.View)
	if s.alloc.Members() == 1 {
		s.logger.Debug("new formation",
			"pivot", t.Pivot, "radius", t.Radius, "angle", t.Angle)
	}

	// Enter from the left half the time, sweeping the other way round.
	if ctx.Rand != nil && ctx.Rand.Chance(0.5) {
		t = t.Mirrored()
	}

	ctx.Spawner.Spawn(NewEnemy(t))
	return false, nil
}

// Reset restarts the spawn timer, e.g. when a new game starts.
func (s *EnemySpawner) Reset() {
	s.elapsed = 0
}

// Draw is a no-op; spawner is not visible.
func (s *EnemySpawner) Draw(_ DrawContext) error {
	return nil
}
