// Package loop runs the game simulation and the terminal frontend around it.
package loop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
	"github.com/tomz197/invaders/internal/rng"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateDead                     // Player died, respawn pending
	GameStateOver                     // No lives left, waiting for restart
)

func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateDead:
		return "dead"
	case GameStateOver:
		return "over"
	default:
		return "unknown"
	}
}

// World holds one game: its objects, the player and the scoring state.
// A World is driven from a single goroutine.
type World struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle
	View    formation.Bounds

	GameState GameState
	Player    *object.Player // nil while dead
	Score     int
	Lives     int
	respawnIn time.Duration
	prevIn    input.Input // Input of the previous tick, for press edges

	rng     *rng.Source
	alloc   *formation.Allocator
	spawner *object.EnemySpawner
	logger  *log.Logger

	// Collision scratch space, reused every tick.
	grid    *physics.SpatialGrid
	lasers  []*object.Laser
	enemies []*object.Enemy
}

// NewWorld creates a world on the title screen. A zero seed picks one from the
// clock; a nil logger uses the package default.
func NewWorld(seed int64, logger *log.Logger) (*World, error) {
	if logger == nil {
		logger = log.Default()
	}
	src := rng.New(seed)
	alloc, err := formation.NewAllocator(src, config.FormationMembersMax)
	if err != nil {
		return nil, fmt.Errorf("loop: new world: %w", err)
	}

	view := formation.Bounds{HalfW: config.ViewWidth / 2, HalfH: config.ViewHeight / 2}
	gridW := config.ViewWidth + 2*object.LaserMargin
	gridH := config.ViewHeight + 2*object.LaserMargin

	logger.Debug("world created", "seed", src.Seed())

	return &World{
		Objects:   []object.Object{},
		View:      view,
		GameState: GameStateStart,
		Lives:     config.InitialLives,
		rng:       src,
		alloc:     alloc,
		spawner:   object.NewEnemySpawner(alloc, config.EnemyMax, config.EnemySpawnInterval, logger),
		logger:    logger,
		grid: physics.NewSpatialGrid(-view.HalfW-object.LaserMargin, -view.HalfH-object.LaserMargin,
			gridW, gridH, config.CollisionCellSize),
	}, nil
}

// Seed returns the seed of the world's random source.
func (w *World) Seed() int64 {
	return w.rng.Seed()
}

// AddObject adds an object to the game world.
func (w *World) AddObject(obj object.Object) {
	w.Objects = append(w.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (w *World) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Start begins a new game: fresh score, full lives, no enemies.
func (w *World) Start() {
	for _, obj := range w.Objects {
		object.ReleaseObject(obj)
	}
	clear(w.Objects)
	w.Objects = w.Objects[:0]
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]

	w.alloc.Reset()
	w.spawner.Reset()
	w.Score = 0
	w.Lives = config.InitialLives
	w.respawnIn = 0

	w.AddObject(w.spawner)
	w.spawnPlayer()
	w.logger.Info("game started", "seed", w.rng.Seed())
}

func (w *World) spawnPlayer() {
	w.Player = object.NewPlayer(w.View)
	w.AddObject(w.Player)
	w.GameState = GameStatePlaying
}

// Step advances the world by dt. Frames longer than config.MaxDelta are
// simulated as config.MaxDelta. On the title and game over screens a fresh
// press of fire or enter starts a new game.
func (w *World) Step(in input.Input, dt time.Duration) error {
	dt = min(dt, config.MaxDelta)

	// A key held since the previous tick does not count as a press.
	pressed := (in.Fire && !w.prevIn.Fire) || (in.Enter && !w.prevIn.Enter)
	w.prevIn = in

	switch w.GameState {
	case GameStateStart, GameStateOver:
		if pressed {
			w.Start()
			return nil
		}
		if w.GameState == GameStateStart {
			return nil
		}
	}

	if err := w.updateObjects(in, dt); err != nil {
		return err
	}

	// Enemies fire together, on average EnemyFireRate times a second.
	if w.rng.Chance(dt.Seconds() * config.EnemyFireRate) {
		for _, obj := range w.Objects {
			if e, ok := obj.(*object.Enemy); ok {
				e.Fire(w)
			}
		}
	}
	w.FlushSpawned()

	w.checkCollisions()
	w.removeDestroyed()
	w.FlushSpawned()

	if w.GameState == GameStateDead {
		w.respawnIn -= dt
		if w.respawnIn <= 0 {
			w.spawnPlayer()
		}
	}
	return nil
}

// updateObjects updates all objects and removes any that request removal.
func (w *World) updateObjects(in input.Input, dt time.Duration) error {
	ctx := object.UpdateContext{
		Delta:   dt,
		Input:   in,
		View:    w.View,
		Spawner: w,
		Objects: w.Objects,
		Rand:    w.rng,
	}

	kept := w.Objects[:0] // reuse backing array
	for _, obj := range w.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return fmt.Errorf("loop: update %T: %w", obj, err)
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept

	w.FlushSpawned()
	return nil
}

// removeDestroyed drops objects marked destroyed during collision checks.
func (w *World) removeDestroyed() {
	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		if d, ok := obj.(object.Destructible); ok && d.IsDestroyed() {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept
}

// killPlayer removes the ship and schedules a respawn or ends the game.
func (w *World) killPlayer() {
	if w.Player == nil {
		return
	}
	w.Player.MarkDestroyed()
	object.SpawnExplosion(w.Player.X, w.Player.Y, w.rng, w)
	w.Player = nil

	w.Lives--
	if w.Lives > 0 {
		w.GameState = GameStateDead
		w.respawnIn = config.PlayerRespawnDelay
	} else {
		w.GameState = GameStateOver
	}
	w.logger.Debug("player hit", "lives", w.Lives, "score", w.Score)
	if w.GameState == GameStateOver {
		w.logger.Info("game over", "score", w.Score)
	}
}

// Draw draws every object onto surface.
func (w *World) Draw(surface object.Surface) error {
	ctx := object.DrawContext{Surface: surface, View: w.View}
	for _, obj := range w.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Status is a summary of the world for the HUD.
type Status struct {
	State     GameState
	Score     int
	Lives     int
	Enemies   int           // Live enemies
	Squad     int           // Enemies given the current formation
	RespawnIn time.Duration // Time until the ship returns, while dead
}

// Status returns the HUD summary.
func (w *World) Status() Status {
	return Status{
		State:     w.GameState,
		Score:     w.Score,
		Lives:     w.Lives,
		Enemies:   object.CountEnemies(w.Objects),
		Squad:     w.alloc.Members(),
		RespawnIn: max(w.respawnIn, 0),
	}
}
