package input

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
)

// Result reports what a tick did.
type Result struct {
	// Cell is the committed cell, valid if HasCell is true.
	Cell    plane.Cell
	HasCell bool

	// Action is the last non-Nop action dispatched this tick.
	Action plane.Action

	// Committed is the text delivered to the sink this tick.
	Committed string

	// Closed is true if the keyboard session ended.
	Closed bool
}

// Manager owns the planes and both hands, and advances them one tick at a time.
type Manager struct {
	mains  []plane.Plane
	signs  plane.Plane
	index  int
	active plane.Plane

	// slot holds the plane the sign toggle swaps in.
	slot plane.Plane

	hands   [len(hand.Sides)]hand.State
	buttons [len(plane.HardButtons)]hand.Edge

	haptics bool
	pulse   Pulse

	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHaptics enables or disables selection pulses and sets their shape.
func WithHaptics(enabled bool, p Pulse) Option {
	return func(m *Manager) {
		m.haptics = enabled
		m.pulse = p
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(mt *Metrics) Option {
	return func(m *Manager) {
		if mt != nil {
			m.metrics = mt
		}
	}
}

// NewManager creates a manager cycling through mains, with signs as the
// sign plane. The first main plane starts active.
func NewManager(mains []plane.Plane, signs plane.Plane, opts ...Option) (*Manager, error) {
	if len(mains) == 0 {
		return nil, ErrNoPlanes
	}
	if signs == nil {
		return nil, ErrNoSignPlane
	}
	seen := make(map[plane.Plane]bool, len(mains)+1)
	for _, p := range append([]plane.Plane{signs}, mains...) {
		if p == nil {
			return nil, ErrNoPlanes
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlane, p.Name())
		}
		seen[p] = true
	}

	m := &Manager{
		mains:   append([]plane.Plane(nil), mains...),
		signs:   signs,
		active:  mains[0],
		slot:    signs,
		haptics: true,
		pulse:   DefaultPulse,
		logger:  slog.New(slog.DiscardHandler),
		metrics: NewMetrics(),
	}
	for i := range m.hands {
		m.hands[i] = hand.NewState()
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Tick samples the device, dispatches at most one cell and the hard button
// presses to the active plane, and applies the resulting actions.
// Sink failures are returned after the tick completes its plane changes.
func (m *Manager) Tick(dev Device, sink Sink) (Result, error) {
	start := time.Now()
	defer func() { m.metrics.RecordTick(time.Since(start)) }()

	m.refresh(dev)

	var res Result
	var errs []error
	if cell, ok := Combine(m.hands[hand.Left], m.hands[hand.Right]); ok {
		res.Cell, res.HasCell = cell, true
		m.metrics.RecordCell()
		if err := m.dispatch(m.active.OnInput(cell), sink, &res); err != nil {
			errs = append(errs, err)
		}
	}

	for i, b := range plane.HardButtons {
		if !m.buttons[i].Update(dev.Button(b)) || res.Closed {
			continue
		}
		if err := m.dispatch(m.active.OnHardInput(b), sink, &res); err != nil {
			errs = append(errs, err)
		}
	}

	return res, errors.Join(errs...)
}

// Sync samples the device without dispatching anything. Call it on frames
// where the keyboard is hidden so that presses made while hidden are not
// seen as new presses when it opens.
func (m *Manager) Sync(dev Device) {
	for _, side := range hand.Sides {
		m.hands[side].Update(dev.Stick(side), dev.Clicking(side))
	}
	for i, b := range plane.HardButtons {
		m.buttons[i].Update(dev.Button(b))
	}
}

func (m *Manager) refresh(dev Device) {
	hp, _ := dev.(Haptics)
	for _, side := range hand.Sides {
		h := &m.hands[side]
		h.Update(dev.Stick(side), dev.Clicking(side))
		if !h.SelectionChanged() || !m.haptics || hp == nil {
			continue
		}
		if err := hp.Pulse(side, m.pulse); err != nil {
			m.logger.Warn("haptic pulse failed", "hand", side, "error", err)
		}
	}
}

func (m *Manager) dispatch(action plane.Action, sink Sink, res *Result) error {
	if action == plane.Nop {
		return nil
	}
	res.Action = action

	var err error
	if action.Flushes() {
		err = m.flush(sink, res)
	}

	switch action {
	case plane.MoveToNextPlane:
		m.nextPlane()
	case plane.MoveToSignPlane:
		m.swapSignPlane()
	case plane.NewLine:
		if err == nil {
			if e := sink.NewLine(); e != nil {
				err = m.sinkError("newline", e)
			}
		}
	case plane.RemoveLastChar:
		if e := sink.Backspace(); e != nil {
			err = m.sinkError("backspace", e)
		}
	case plane.CloseKeyboard:
		res.Closed = true
	}
	return err
}

// flush delivers the active buffer. The buffer is only emptied once the
// sink accepted it.
func (m *Manager) flush(sink Sink, res *Result) error {
	text := m.active.Buffer()
	if text == "" {
		return nil
	}
	if err := sink.Commit(text); err != nil {
		m.metrics.RecordCommitError()
		return m.sinkError("commit", err)
	}
	m.active.TakeBuffer()
	m.metrics.RecordCommit()
	res.Committed += text
	m.logger.Debug("buffer flushed", "plane", m.active.Name(), "text", text)
	return nil
}

func (m *Manager) nextPlane() {
	m.index = (m.index + 1) % len(m.mains)
	m.active = m.mains[m.index]
	m.slot = m.signs
	m.metrics.RecordPlaneSwitch()
	m.logger.Debug("plane switched", "plane", m.active.Name())
}

func (m *Manager) swapSignPlane() {
	m.active, m.slot = m.slot, m.active
	m.metrics.RecordPlaneSwitch()
	m.logger.Debug("sign plane toggled", "plane", m.active.Name())
}

func (m *Manager) sinkError(op string, err error) error {
	return &SinkError{Op: op, Plane: m.active.Name(), Err: err}
}

// ActivePlane returns the plane receiving input.
func (m *Manager) ActivePlane() plane.Plane {
	return m.active
}

// SignActive returns true if the sign plane is active.
func (m *Manager) SignActive() bool {
	return m.active == m.signs
}

// Hand returns a copy of one hand's state.
func (m *Manager) Hand(side hand.Side) hand.State {
	return m.hands[side]
}

// SetHaptics changes the selection pulse between ticks.
func (m *Manager) SetHaptics(enabled bool, p Pulse) {
	m.haptics = enabled
	m.pulse = p
}

// Metrics returns the manager's metrics collector.
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}
