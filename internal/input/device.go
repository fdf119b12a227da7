package input

import (
	"time"

	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
)

// Device is the controller sampled once per tick.
type Device interface {
	// Stick returns the stick position of a hand in [-1,1]^2.
	Stick(side hand.Side) hand.Vec2

	// Clicking returns true while the hand's stick click is held.
	Clicking(side hand.Side) bool

	// Button returns true while a hard button is held.
	Button(b plane.HardButton) bool
}

// Pulse describes one haptic vibration.
type Pulse struct {
	Delay     time.Duration
	Duration  time.Duration
	Frequency float64
	Amplitude float64
}

// DefaultPulse is played when a hand's selection changes.
var DefaultPulse = Pulse{
	Duration:  50 * time.Millisecond,
	Frequency: 1.0,
	Amplitude: 0.5,
}

// Haptics is an optional Device capability.
type Haptics interface {
	Pulse(side hand.Side, p Pulse) error
}

// Poller is an optional Device capability. Poll is called once at the start
// of each frame, before the device is sampled. Returning ErrQuit ends the
// frame loop normally.
type Poller interface {
	Poll() error
}
