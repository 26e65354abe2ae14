package object

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/rng"
)

func newTestSpawner(t *testing.T, max int) *EnemySpawner {
	t.Helper()
	alloc, err := formation.NewAllocator(rng.New(7), formation.MaxMembers)
	if err != nil {
		t.Fatal(err)
	}
	return NewEnemySpawner(alloc, max, time.Second, log.New(io.Discard))
}

func TestEnemySpawner_OnePerInterval(t *testing.T) {
	s := newTestSpawner(t, 4)
	sp := &collectSpawner{}
	ctx := UpdateContext{Delta: 500 * time.Millisecond, View: testView, Spawner: sp, Rand: fixedRandom{}}

	s.Update(ctx)
	if len(sp.objects) != 0 {
		t.Fatal("spawned before the interval elapsed")
	}
	s.Update(ctx)
	if len(sp.objects) != 1 {
		t.Fatalf("expected one enemy after 1s, got %d", len(sp.objects))
	}

	// A long frame still yields a single spawn.
	ctx.Delta = 3 * time.Second
	s.Update(ctx)
	if len(sp.objects) != 2 {
		t.Errorf("expected 2 enemies, got %d", len(sp.objects))
	}
}

func TestEnemySpawner_RespectsMax(t *testing.T) {
	s := newTestSpawner(t, 2)
	sp := &collectSpawner{}
	ctx := UpdateContext{Delta: time.Second, View: testView, Spawner: sp, Rand: fixedRandom{}}

	ctx.Objects = []Object{&Enemy{}, &Enemy{}}
	s.Update(ctx)
	if len(sp.objects) != 0 {
		t.Fatalf("spawned with %d live enemies", len(ctx.Objects))
	}

	dead := &Enemy{}
	dead.MarkDestroyed()
	ctx.Objects = []Object{&Enemy{}, dead}
	s.Update(ctx)
	if len(sp.objects) != 1 {
		t.Errorf("destroyed enemies should not count, spawned %d", len(sp.objects))
	}
}

func TestEnemySpawner_SideChoice(t *testing.T) {
	for _, heads := range []bool{false, true} {
		s := newTestSpawner(t, 4)
		sp := &collectSpawner{}
		s.Update(UpdateContext{Delta: time.Second, View: testView, Spawner: sp, Rand: fixedRandom{heads: heads}})

		e := sp.objects[0].(*Enemy)
		start := e.Formation.Template.Start
		if e.X != start.X || e.Y != start.Y {
			t.Errorf("enemy at (%v, %v), template start %v", e.X, e.Y, start)
		}
		if heads && start.X != -400 {
			t.Errorf("left spawn should mirror the start, got %v", start)
		}
		if !heads && start.X != 400 {
			t.Errorf("right spawn should keep the start, got %v", start)
		}
	}
}

func TestEnemySpawner_SquadsShareFormation(t *testing.T) {
	s := newTestSpawner(t, 4)
	sp := &collectSpawner{}
	ctx := UpdateContext{Delta: time.Second, View: testView, Spawner: sp, Rand: fixedRandom{}}
	for i := 0; i < 3; i++ {
		s.Update(ctx)
	}

	a := sp.objects[0].(*Enemy).Formation.Template
	b := sp.objects[1].(*Enemy).Formation.Template
	c := sp.objects[2].(*Enemy).Formation.Template
	if a != b {
		t.Errorf("first two enemies should share a formation: %+v vs %+v", a, b)
	}
	if c == a {
		t.Error("third enemy should start a new formation")
	}
}
