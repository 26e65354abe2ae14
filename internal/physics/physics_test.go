package physics

import (
	"math"
	"testing"
)

func TestOverlap(t *testing.T) {
	enemy := Box{X: 0, Y: 0, W: 72, H: 37.5}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"centred", Box{X: 0, Y: 0, W: 4.5, H: 27}, true},
		{"inside edge", Box{X: 38, Y: 0, W: 4.5, H: 27}, true},
		{"touching edge", Box{X: 38.25, Y: 0, W: 4.5, H: 27}, false},
		{"right of", Box{X: 60, Y: 0, W: 4.5, H: 27}, false},
		{"above", Box{X: 0, Y: 40, W: 4.5, H: 27}, false},
		{"corner overlap", Box{X: 37, Y: 31, W: 4.5, H: 27}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(enemy, tt.b); got != tt.want {
				t.Errorf("Overlap(enemy, %+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := Overlap(tt.b, enemy); got != tt.want {
				t.Errorf("Overlap is not symmetric for %+v", tt.b)
			}
		})
	}
}

func TestOutside(t *testing.T) {
	if Outside(0, 0, 300, 350, 200) {
		t.Error("origin reported outside")
	}
	if !Outside(0, 551, 300, 350, 200) {
		t.Error("point above margin reported inside")
	}
	if Outside(-500, 0, 300, 350, 200) {
		t.Error("point on margin reported outside")
	}
	if !Outside(math.Inf(-1), 0, 300, 350, 200) {
		t.Error("infinity reported inside")
	}
}
