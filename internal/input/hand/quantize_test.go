package hand

import (
	"math"
	"testing"
)

func polar(deg, radius float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: radius * math.Cos(rad), Y: radius * math.Sin(rad)}
}

func TestSectorCompassPoints(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want int
	}{
		{"up", Vec2{0, 1}, 0},
		{"up-right", Vec2{0.7, 0.7}, 1},
		{"right", Vec2{1, 0}, 2},
		{"down-right", Vec2{0.7, -0.7}, 3},
		{"down", Vec2{0, -1}, 4},
		{"down-left", Vec2{-0.7, -0.7}, 5},
		{"left", Vec2{-1, 0}, 6},
		{"up-left", Vec2{-0.7, 0.7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sector(tt.v); got != tt.want {
				t.Errorf("Sector(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestSectorClockwiseRotation(t *testing.T) {
	// Rotating 90 degrees clockwise advances the selection by two.
	for deg := 0.0; deg < 360; deg += 15 {
		if math.Mod(deg, 45) == 22.5 {
			continue
		}
		before := Sector(polar(deg, 1))
		after := Sector(polar(deg-90, 1))
		if want := (before + 2) % Sectors; after != want {
			t.Errorf("Sector at %v° = %d, at %v° = %d, want %d", deg, before, deg-90, after, want)
		}
	}
}

func TestQuantizeBelowHold(t *testing.T) {
	for _, prev := range []int{NoSelection, 0, 3, 7} {
		for _, v := range []Vec2{{0, 0}, {0.5, 0.5}, {0, 0.74}, {-0.7, 0}} {
			if got := Quantize(v, prev); got != NoSelection {
				t.Errorf("Quantize(%v, %d) = %d, want %d", v, prev, got, NoSelection)
			}
		}
	}
}

func TestQuantizeAboveEnter(t *testing.T) {
	for _, prev := range []int{NoSelection, 0, 5} {
		if got := Quantize(Vec2{0.9, 0}, prev); got != 2 {
			t.Errorf("Quantize(right, %d) = %d, want 2", prev, got)
		}
		if got := Quantize(Vec2{0, -0.95}, prev); got != 4 {
			t.Errorf("Quantize(down, %d) = %d, want 4", prev, got)
		}
	}
}

func TestQuantizeHysteresisBand(t *testing.T) {
	band := 0.78

	if got := Quantize(Vec2{0, band}, NoSelection); got != NoSelection {
		t.Errorf("disengaged hand in band = %d, want %d", got, NoSelection)
	}

	// An engaged hand keeps tracking the angle inside the band.
	if got := Quantize(Vec2{band, 0}, 0); got != 2 {
		t.Errorf("engaged hand in band = %d, want 2", got)
	}
}

func TestStateUpdateSequence(t *testing.T) {
	s := NewState()
	if s.Selecting() {
		t.Fatal("new state should not be selecting")
	}

	steps := []struct {
		stick   Vec2
		want    int
		changed bool
	}{
		{Vec2{0, 0.78}, NoSelection, false}, // band, not yet engaged
		{Vec2{0, 0.85}, 0, true},            // engage
		{Vec2{0.78, 0}, 2, true},            // band, keeps tracking
		{Vec2{0.7, 0}, NoSelection, true},   // below hold
		{Vec2{0.78, 0}, NoSelection, false}, // band again, stays disengaged
	}

	for i, step := range steps {
		s.Update(step.stick, false)
		if s.Selection != step.want {
			t.Errorf("step %d: Selection = %d, want %d", i, s.Selection, step.want)
		}
		if s.SelectionChanged() != step.changed {
			t.Errorf("step %d: SelectionChanged() = %v, want %v", i, s.SelectionChanged(), step.changed)
		}
		if s.Stick != step.stick {
			t.Errorf("step %d: Stick = %v, want %v", i, s.Stick, step.stick)
		}
	}
}
