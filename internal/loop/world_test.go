package loop

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
)

const frame = time.Second / config.TargetFPS

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(42, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func startedWorld(t *testing.T) *World {
	t.Helper()
	w := newTestWorld(t)
	if err := w.Step(input.Input{Fire: true}, frame); err != nil {
		t.Fatal(err)
	}
	if w.GameState != GameStatePlaying {
		t.Fatalf("state = %v, want playing", w.GameState)
	}
	return w
}

func stepN(t *testing.T, w *World, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := w.Step(input.Input{}, frame); err != nil {
			t.Fatal(err)
		}
	}
}

func countType[T object.Object](objects []object.Object) int {
	n := 0
	for _, obj := range objects {
		if _, ok := obj.(T); ok {
			n++
		}
	}
	return n
}

func TestWorld_StartsOnTitle(t *testing.T) {
	w := newTestWorld(t)
	if w.Seed() != 42 {
		t.Errorf("seed = %d, want 42", w.Seed())
	}
	stepN(t, w, 120)
	if w.GameState != GameStateStart {
		t.Errorf("state = %v, want start", w.GameState)
	}
	if len(w.Objects) != 0 {
		t.Errorf("title screen should be empty, got %d objects", len(w.Objects))
	}
}

func TestWorld_StartBeginsGame(t *testing.T) {
	w := startedWorld(t)
	if w.Player == nil {
		t.Fatal("player should be spawned")
	}
	if w.Lives != config.InitialLives || w.Score != 0 {
		t.Errorf("lives=%d score=%d", w.Lives, w.Score)
	}
	if countType[*object.Player](w.Objects) != 1 || countType[*object.EnemySpawner](w.Objects) != 1 {
		t.Errorf("unexpected objects %v", w.Objects)
	}
}

func TestWorld_SpawnsEnemyEachSecond(t *testing.T) {
	w := startedWorld(t)

	stepN(t, w, 59)
	if n := object.CountEnemies(w.Objects); n != 0 {
		t.Fatalf("enemy spawned before 1s: %d", n)
	}
	stepN(t, w, 2)
	if n := object.CountEnemies(w.Objects); n != 1 {
		t.Fatalf("enemies after 1s = %d, want 1", n)
	}
	if s := w.Status(); s.Enemies != 1 || s.Squad != 1 {
		t.Errorf("status = %+v", s)
	}
}

func TestWorld_EnemyCap(t *testing.T) {
	w := startedWorld(t)
	stepN(t, w, 10*config.TargetFPS)
	if n := object.CountEnemies(w.Objects); n != config.EnemyMax {
		t.Errorf("enemies = %d, want %d", n, config.EnemyMax)
	}
}

func TestWorld_DeltaClamped(t *testing.T) {
	w := startedWorld(t)
	l := object.NewPlayerLaser(0, 0)
	w.AddObject(l)

	if err := w.Step(input.Input{}, time.Second); err != nil {
		t.Fatal(err)
	}
	want := formation.BaseSpeed * config.MaxDelta.Seconds()
	if math.Abs(l.Y-want) > 1e-9 {
		t.Errorf("laser moved %v, want %v", l.Y, want)
	}
}

func TestWorld_PlayerRespawns(t *testing.T) {
	w := startedWorld(t)
	w.AddObject(object.NewEnemyLaser(w.Player.X, w.Player.Y))
	w.checkCollisions()
	w.removeDestroyed()

	if w.GameState != GameStateDead || w.Player != nil {
		t.Fatalf("state = %v, player = %v", w.GameState, w.Player)
	}
	if w.Lives != config.InitialLives-1 {
		t.Errorf("lives = %d", w.Lives)
	}
	if countType[*object.Player](w.Objects) != 0 {
		t.Error("dead ship still in the world")
	}

	frames := 0
	for w.GameState == GameStateDead && frames < 300 {
		stepN(t, w, 1)
		frames++
	}
	if w.GameState != GameStatePlaying || w.Player == nil {
		t.Fatalf("player did not respawn, state %v", w.GameState)
	}
	if want := int(config.PlayerRespawnDelay / frame); frames < want-1 || frames > want+2 {
		t.Errorf("respawned after %d frames, want about %d", frames, want)
	}
}

func TestWorld_GameOverAndRestart(t *testing.T) {
	w := startedWorld(t)
	w.Lives = 1
	w.Score = 700
	w.AddObject(object.NewEnemyLaser(w.Player.X, w.Player.Y))
	w.checkCollisions()

	if w.GameState != GameStateOver {
		t.Fatalf("state = %v, want over", w.GameState)
	}
	stepN(t, w, 200)
	if w.GameState != GameStateOver {
		t.Fatalf("game over should wait for a key, state %v", w.GameState)
	}

	if err := w.Step(input.Input{Enter: true}, frame); err != nil {
		t.Fatal(err)
	}
	if w.GameState != GameStatePlaying || w.Lives != config.InitialLives || w.Score != 0 {
		t.Errorf("restart: state=%v lives=%d score=%d", w.GameState, w.Lives, w.Score)
	}
	if object.CountEnemies(w.Objects) != 0 {
		t.Error("restart should clear enemies")
	}
}

func TestWorld_HeldFireDoesNotSkipGameOver(t *testing.T) {
	w := startedWorld(t)
	w.Lives = 1
	w.Score = 700
	fire := input.Input{Fire: true}

	w.AddObject(object.NewEnemyLaser(w.Player.X, w.Player.Y))
	if err := w.Step(fire, frame); err != nil {
		t.Fatal(err)
	}
	if w.GameState != GameStateOver {
		t.Fatalf("state = %v, want over", w.GameState)
	}

	for i := 0; i < 30; i++ {
		if err := w.Step(fire, frame); err != nil {
			t.Fatal(err)
		}
	}
	if w.GameState != GameStateOver || w.Score != 700 {
		t.Fatalf("holding fire restarted the game: state=%v score=%d", w.GameState, w.Score)
	}

	// Release, then press again.
	if err := w.Step(input.Input{}, frame); err != nil {
		t.Fatal(err)
	}
	if err := w.Step(fire, frame); err != nil {
		t.Fatal(err)
	}
	if w.GameState != GameStatePlaying || w.Score != 0 {
		t.Errorf("fresh press should restart: state=%v score=%d", w.GameState, w.Score)
	}
}

func TestGameState_String(t *testing.T) {
	if GameStateOver.String() != "over" || GameState(99).String() != "unknown" {
		t.Error("unexpected GameState names")
	}
}
