// Package sim is an input device driven by terminal key events, for
// running the keyboard without a headset.
//
// Left stick:  q w e      Right stick:  u i o
//              a s d                    j k l
//              z x c                    m , .
//
// The centre key releases the stick. f and h click the left and right
// stick for one frame. Esc is the Close button for one frame, Tab toggles
// Suspend, and Ctrl+C quits.
package sim

import (
	"math"
	"sync"
	"time"

	"github.com/clekey/clekeyOVR/internal/input"
	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
	"github.com/clekey/clekeyOVR/internal/renderer/backend"
)

// maxPulses is how many haptic pulses are remembered.
const maxPulses = 16

// center releases a stick.
const center = -1

// Compass keys in sector order, starting north and turning clockwise.
var (
	leftStick  = [hand.Sectors]rune{'w', 'e', 'd', 'c', 'x', 'z', 'a', 'q'}
	rightStick = [hand.Sectors]rune{'i', 'o', 'l', '.', ',', 'm', 'j', 'u'}
)

// PulseRecord is a haptic pulse the device was asked to play.
type PulseRecord struct {
	Side  hand.Side
	Pulse input.Pulse
	At    time.Time
}

// Device implements input.Device, input.Haptics and input.Poller.
// Send may be called from any goroutine; everything else belongs to the
// frame loop.
type Device struct {
	events chan backend.Event

	sticks  [len(hand.Sides)]hand.Vec2
	clicks  [len(hand.Sides)]bool
	close   bool
	suspend bool
	quit    bool

	mu     sync.Mutex
	pulses []PulseRecord
	now    func() time.Time
}

var (
	_ input.Device  = (*Device)(nil)
	_ input.Haptics = (*Device)(nil)
	_ input.Poller  = (*Device)(nil)
)

// New creates a device with both sticks centred.
func New() *Device {
	return &Device{
		events: make(chan backend.Event, 64),
		now:    time.Now,
	}
}

// Send queues a key event for the next frame. It never blocks; events
// beyond the queue size are dropped.
func (d *Device) Send(ev backend.Event) bool {
	select {
	case d.events <- ev:
		return true
	default:
		return false
	}
}

// Pump forwards events from b until it is shut down.
func (d *Device) Pump(b backend.Backend) {
	for {
		ev := b.PollEvent()
		if ev.Type == backend.EventNone {
			return
		}
		d.Send(ev)
	}
}

// Poll applies the queued events. Clicks and Close from the previous frame
// are released first, so each press lasts exactly one frame.
func (d *Device) Poll() error {
	d.clicks = [len(hand.Sides)]bool{}
	d.close = false

	for {
		select {
		case ev := <-d.events:
			d.apply(ev)
		default:
			if d.quit {
				return input.ErrQuit
			}
			return nil
		}
	}
}

func (d *Device) apply(ev backend.Event) {
	if ev.Type != backend.EventKey {
		return
	}

	switch ev.Key {
	case backend.KeyEscape:
		d.close = true
	case backend.KeyTab:
		d.suspend = !d.suspend
	case backend.KeyCtrlC:
		d.quit = true
	case backend.KeyRune:
		d.applyRune(ev.Rune)
	}
}

func (d *Device) applyRune(r rune) {
	switch r {
	case 'f':
		d.clicks[hand.Left] = true
	case 'h':
		d.clicks[hand.Right] = true
	case 's':
		d.aim(hand.Left, center)
	case 'k':
		d.aim(hand.Right, center)
	default:
		for i := range hand.Sectors {
			switch r {
			case leftStick[i]:
				d.aim(hand.Left, i)
			case rightStick[i]:
				d.aim(hand.Right, i)
			}
		}
	}
}

// aim points a stick fully at a sector, or releases it.
func (d *Device) aim(side hand.Side, sector int) {
	if sector == center {
		d.sticks[side] = hand.Vec2{}
		return
	}
	a := float64(sector) * 2 * math.Pi / hand.Sectors
	d.sticks[side] = hand.Vec2{X: math.Sin(a), Y: math.Cos(a)}
}

func (d *Device) Stick(side hand.Side) hand.Vec2 { return d.sticks[side] }

func (d *Device) Clicking(side hand.Side) bool { return d.clicks[side] }

func (d *Device) Button(b plane.HardButton) bool {
	switch b {
	case plane.ButtonClose:
		return d.close
	case plane.ButtonSuspend:
		return d.suspend
	default:
		return false
	}
}

// Suspended returns true while Suspend is toggled on.
func (d *Device) Suspended() bool {
	return d.suspend
}

// Pulse records a haptic pulse.
func (d *Device) Pulse(side hand.Side, p input.Pulse) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pulses = append(d.pulses, PulseRecord{Side: side, Pulse: p, At: d.now()})
	if len(d.pulses) > maxPulses {
		d.pulses = d.pulses[len(d.pulses)-maxPulses:]
	}
	return nil
}

// LastPulse returns the most recent pulse.
func (d *Device) LastPulse() (PulseRecord, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pulses) == 0 {
		return PulseRecord{}, false
	}
	return d.pulses[len(d.pulses)-1], true
}

// Pulses returns the remembered pulses, oldest first.
func (d *Device) Pulses() []PulseRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]PulseRecord(nil), d.pulses...)
}
