package formation

import (
	"errors"
	"math"
	"testing"
)

func TestNewTemplate_RejectsDegenerateRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius Point
	}{
		{"zero x", Point{X: 0, Y: 100}},
		{"zero y", Point{X: 100, Y: 0}},
		{"negative x", Point{X: -10, Y: 100}},
		{"negative y", Point{X: 100, Y: -1}},
		{"nan", Point{X: math.NaN(), Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTemplate(Point{X: 400}, Point{}, tt.radius, BaseSpeed)
			if !errors.Is(err, ErrInvalidRadius) {
				t.Fatalf("expected ErrInvalidRadius, got %v", err)
			}
		})
	}
}

func TestNewTemplate_RejectsNonPositiveSpeed(t *testing.T) {
	_, err := NewTemplate(Point{X: 400}, Point{}, Point{X: 100, Y: 100}, 0)
	if !errors.Is(err, ErrInvalidSpeed) {
		t.Fatalf("expected ErrInvalidSpeed, got %v", err)
	}
}

func TestNewTemplate_AngleFromPivotToStart(t *testing.T) {
	cases := []struct{ start, pivot Point }{
		{Point{X: 400, Y: 0}, Point{X: 0, Y: 0}},
		{Point{X: 400, Y: -300}, Point{X: 50, Y: 120}},
		{Point{X: -400, Y: 200}, Point{X: -100, Y: 10}},
		{Point{X: 0, Y: 450}, Point{X: 0, Y: 0}},
	}
	for _, c := range cases {
		tmpl, err := NewTemplate(c.start, c.pivot, Point{X: 120, Y: 100}, BaseSpeed)
		if err != nil {
			t.Fatalf("NewTemplate: %v", err)
		}
		want := math.Atan2(c.start.Y-c.pivot.Y, c.start.X-c.pivot.X)
		if tmpl.Angle != want {
			t.Errorf("start=%v pivot=%v: angle %v, want %v", c.start, c.pivot, tmpl.Angle, want)
		}

		// The ellipse point at the initial angle faces the same way as start.
		target := Point{
			X: tmpl.Pivot.X + tmpl.Radius.X*math.Cos(tmpl.Angle),
			Y: tmpl.Pivot.Y + tmpl.Radius.Y*math.Sin(tmpl.Angle),
		}
		dot := (target.X-c.pivot.X)*(c.start.X-c.pivot.X) + (target.Y-c.pivot.Y)*(c.start.Y-c.pivot.Y)
		if dot <= 0 {
			t.Errorf("start=%v pivot=%v: ellipse point %v is on the wrong side", c.start, c.pivot, target)
		}
	}
}

func TestNewTemplate_StartNotForcedOntoEllipse(t *testing.T) {
	start := Point{X: 400, Y: 0}
	tmpl, err := NewTemplate(start, Point{}, Point{X: 100, Y: 100}, BaseSpeed)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	if tmpl.Start != start {
		t.Errorf("start moved to %v", tmpl.Start)
	}
}

func TestTemplate_Mirrored(t *testing.T) {
	tmpl := Template{Start: Point{X: 400, Y: 12}, Pivot: Point{X: 5, Y: 6}, Radius: Point{X: 90, Y: 100}, Speed: BaseSpeed, Angle: 0.3}
	m := tmpl.Mirrored()
	if m.Start.X != -400 || m.Start.Y != 12 {
		t.Errorf("mirrored start = %v", m.Start)
	}
	if m.Angle != tmpl.Angle || m.Pivot != tmpl.Pivot || m.Radius != tmpl.Radius {
		t.Errorf("mirroring must only touch the start point: %+v", m)
	}
	if tmpl.Start.X != 400 {
		t.Error("original template was modified")
	}
}
