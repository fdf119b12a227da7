package hand

import "testing"

func TestEdgeStartedOnlyOnRisingTick(t *testing.T) {
	var e Edge
	samples := []bool{false, true, true, false, true, false, false}
	want := []bool{false, true, false, false, true, false, false}

	for i, down := range samples {
		got := e.Update(down)
		if got != want[i] {
			t.Errorf("tick %d: Update(%v) = %v, want %v", i, down, got, want[i])
		}
		if e.Down() != down {
			t.Errorf("tick %d: Down() = %v, want %v", i, e.Down(), down)
		}
	}
}

func TestEdgeStopped(t *testing.T) {
	var e Edge
	e.Update(true)
	if e.Stopped() {
		t.Error("Stopped() should be false while pressed")
	}
	e.Update(false)
	if !e.Stopped() {
		t.Error("Stopped() should be true on release tick")
	}
	e.Update(false)
	if e.Stopped() {
		t.Error("Stopped() should be false after release tick")
	}
}

func TestStateClickStarted(t *testing.T) {
	s := NewState()
	s.Update(Vec2{}, true)
	if !s.ClickStarted() {
		t.Error("ClickStarted() should be true on press tick")
	}
	if !s.Clicking || s.ClickingOld {
		t.Errorf("Clicking = %v, ClickingOld = %v; want true, false", s.Clicking, s.ClickingOld)
	}

	s.Update(Vec2{}, true)
	if s.ClickStarted() {
		t.Error("ClickStarted() should be false while held")
	}
}

func TestSideOpposite(t *testing.T) {
	if Left.Opposite() != Right || Right.Opposite() != Left {
		t.Error("Opposite() should swap sides")
	}
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("String() = %q, %q", Left.String(), Right.String())
	}
}
