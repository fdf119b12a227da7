package input

import (
	"errors"
	"math"

	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
)

// fakeDevice is a controller with settable sticks and buttons.
type fakeDevice struct {
	sticks  [2]hand.Vec2
	clicks  [2]bool
	buttons map[plane.HardButton]bool
	pulses  []hand.Side
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{buttons: make(map[plane.HardButton]bool)}
}

func (d *fakeDevice) Stick(side hand.Side) hand.Vec2 { return d.sticks[side] }
func (d *fakeDevice) Clicking(side hand.Side) bool { return d.clicks[side] }
func (d *fakeDevice) Button(b plane.HardButton) bool { return d.buttons[b] }
func (d *fakeDevice) Pulse(side hand.Side, _ Pulse) error {
	d.pulses = append(d.pulses, side)
	return nil
}

// point aims both sticks at the sectors for row and col.
func (d *fakeDevice) point(row, col int) {
	d.sticks[hand.Left] = sectorVec(row)
	d.sticks[hand.Right] = sectorVec(col)
}

func sectorVec(sector int) hand.Vec2 {
	a := float64(sector) * math.Pi / 4
	return hand.Vec2{X: math.Sin(a), Y: math.Cos(a)}
}

// fakeSink records everything it receives.
type fakeSink struct {
	commits    []string
	backspaces int
	newlines   int
	err        error
}

func (s *fakeSink) Commit(text string) error {
	if s.err != nil {
		return s.err
	}
	s.commits = append(s.commits, text)
	return nil
}

func (s *fakeSink) Backspace() error {
	if s.err != nil {
		return s.err
	}
	s.backspaces++
	return nil
}

func (s *fakeSink) NewLine() error {
	if s.err != nil {
		return s.err
	}
	s.newlines++
	return nil
}

var errSinkDown = errors.New("sink down")
