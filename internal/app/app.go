package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/input"
	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
	"github.com/clekey/clekeyOVR/internal/output"
)

// statsInterval is how often frame statistics are logged at debug level.
const statsInterval = 10 * time.Second

// Renderer draws one frame.
type Renderer interface {
	Render(f Frame) error
}

// UIConfigurable is an optional Renderer capability for live UI settings.
type UIConfigurable interface {
	ApplyUI(ui config.UIConfig) error
}

// Frame is the state handed to the renderer once per frame.
type Frame struct {
	Status  Status
	Session string
	View    input.View

	// LastCommit is the most recent text delivered to the sink.
	LastCommit string

	// Err is the most recent sink failure, cleared by the next input
	// that succeeds.
	Err error

	FPS float64
}

// Options configures the application.
type Options struct {
	// Config defaults to config.Default().
	Config *config.Config

	// Device is sampled every frame. It is required.
	Device input.Device

	// Sink receives committed text. Nil builds one from Config.Output.
	Sink input.Sink

	// Keys injects keystrokes for a built sink.
	Keys output.Keystroker

	// Renderer draws each frame. Nil draws nothing.
	Renderer Renderer

	// Logging enables live level changes. Its logger is used when Logger
	// is nil.
	Logging *Logging
	Logger  *slog.Logger

	// Reloads delivers new configs, applied between frames.
	Reloads <-chan *config.Config
}

// Application runs the keyboard session.
type Application struct {
	cfg      *config.Config
	manager  *input.Manager
	device   input.Device
	sink     input.Sink
	ownSink  bool
	keys     output.Keystroker
	renderer Renderer
	logging  *Logging
	logger   *slog.Logger
	reloads  <-chan *config.Config
	metrics  *Metrics

	status     Status
	session    string
	closeBtn   hand.Edge
	suspendBtn hand.Edge

	// rebuild is set when the planes changed while the keyboard was open.
	rebuild bool

	lastCommit string
	lastErr    error

	running atomic.Bool
}

// New creates an application in the Waiting status.
func New(opts Options) (*Application, error) {
	if opts.Device == nil {
		return nil, &InitError{Component: "device", Err: ErrNoDevice}
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	logger := opts.Logger
	if logger == nil && opts.Logging != nil {
		logger = opts.Logging.Logger()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &Application{
		cfg:      cfg.Clone(),
		device:   opts.Device,
		sink:     opts.Sink,
		keys:     opts.Keys,
		renderer: opts.Renderer,
		logging:  opts.Logging,
		logger:   logger,
		reloads:  opts.Reloads,
		metrics:  NewMetrics(),
	}

	manager, err := BuildManager(a.cfg, logger)
	if err != nil {
		return nil, &InitError{Component: "keyboard", Err: err}
	}
	a.manager = manager

	if a.sink == nil {
		sink, err := BuildSink(a.cfg, a.keys, logger.With("component", "output"))
		if err != nil {
			return nil, &InitError{Component: "output", Err: err}
		}
		a.sink = sink
		a.ownSink = true
	}

	if ui, ok := a.renderer.(UIConfigurable); ok {
		if err := ui.ApplyUI(a.cfg.UI); err != nil {
			return nil, &InitError{Component: "renderer", Err: err}
		}
	}

	return a, nil
}

// Run steps the frame loop at the configured rate until ctx is done or a
// step returns ErrQuit. Any other step error stops the loop and is returned.
func (a *Application) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	interval := a.cfg.FrameInterval()
	frames := time.NewTicker(interval)
	defer frames.Stop()
	stats := time.NewTicker(statsInterval)
	defer stats.Stop()

	a.logger.Info("frame loop started", "fps", a.cfg.Input.FPS, "planes", a.cfg.Input.Planes)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("frame loop stopped", "reason", context.Cause(ctx))
			return nil

		case cfg, ok := <-a.reloads:
			if !ok {
				a.reloads = nil
				continue
			}
			if err := a.ApplyConfig(cfg); err != nil {
				a.logger.Warn("config rejected", "error", err)
				continue
			}
			if next := a.cfg.FrameInterval(); next != interval {
				interval = next
				frames.Reset(interval)
			}

		case <-stats.C:
			a.logStats()

		case <-frames.C:
			if err := a.Step(); err != nil {
				if errors.Is(err, ErrQuit) {
					a.logger.Info("quit requested")
					return nil
				}
				return err
			}
		}
	}
}

// Step runs one frame: it polls the device, advances the status machine,
// and hands the result to the renderer.
func (a *Application) Step() error {
	start := time.Now()

	if p, ok := a.device.(input.Poller); ok {
		if err := p.Poll(); err != nil {
			return err
		}
	}

	opened := a.closeBtn.Update(a.device.Button(plane.ButtonClose))
	a.suspendBtn.Update(a.device.Button(plane.ButtonSuspend))

	switch a.status {
	case Waiting:
		a.manager.Sync(a.device)
		if opened {
			a.open()
		}

	case Inputting:
		if a.suspendBtn.Down() {
			a.manager.Sync(a.device)
			a.setStatus(Suspending)
			break
		}
		a.tick()

	case Suspending:
		a.manager.Sync(a.device)
		if !a.suspendBtn.Down() {
			a.setStatus(Inputting)
		}
	}

	if a.renderer != nil {
		if err := a.renderer.Render(a.Frame()); err != nil {
			return NewOperationError("render", a.status.String(), err)
		}
	}

	a.metrics.RecordFrame(start, time.Since(start), a.cfg.FrameInterval())
	return nil
}

func (a *Application) tick() {
	res, err := a.manager.Tick(a.device, a.sink)
	if res.Committed != "" {
		a.lastCommit = res.Committed
	}
	switch {
	case err != nil:
		a.lastErr = err
		a.logger.Error("sink failed", "session", a.session, "plane", a.manager.ActivePlane().Name(), "error", err)
	case res.HasCell || res.Action != plane.Nop:
		a.lastErr = nil
	}
	if res.Closed {
		a.close()
	}
}

func (a *Application) open() {
	a.session = uuid.NewString()
	a.metrics.RecordSession()
	a.setStatus(Inputting)
}

func (a *Application) close() {
	a.setStatus(Waiting)
	a.session = ""
	if a.rebuild {
		a.rebuildManager()
	}
}

func (a *Application) setStatus(s Status) {
	if s == a.status {
		return
	}
	a.logger.Debug("status changed", "session", a.session, "from", a.status, "to", s)
	a.status = s
}

// rebuildManager replaces the keyboard with one built from the current
// config. It must only run while Waiting so no typed text is lost.
func (a *Application) rebuildManager() {
	manager, err := BuildManager(a.cfg, a.logger)
	if err != nil {
		a.logger.Error("rebuild keyboard", "error", err)
		return
	}
	manager.Sync(a.device)
	a.manager = manager
	a.rebuild = false
	a.logger.Info("keyboard rebuilt", "planes", a.cfg.Input.Planes)
}

// ApplyConfig switches to cfg between frames. Haptics, logging, output and
// UI settings take effect at once. Plane changes wait until the keyboard
// is closed.
func (a *Application) ApplyConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return NewOperationError("apply config", "", err)
	}
	next := cfg.Clone()
	prev := a.cfg

	if a.ownSink && next.Output != prev.Output {
		sink, err := BuildSink(next, a.keys, a.logger.With("component", "output"))
		if err != nil {
			return NewOperationError("apply config", "output", err)
		}
		a.sink = sink
	}
	if ui, ok := a.renderer.(UIConfigurable); ok && next.UI != prev.UI {
		if err := ui.ApplyUI(next.UI); err != nil {
			return NewOperationError("apply config", "ui", err)
		}
	}
	if a.logging != nil && next.Logging.Level != prev.Logging.Level {
		if err := a.logging.SetLevel(next.Logging.Level); err != nil {
			return NewOperationError("apply config", "logging", err)
		}
	}

	a.cfg = next
	a.manager.SetHaptics(next.Haptics.Enabled, PulseOf(next.Haptics))

	if !slices.Equal(next.Input.Planes, prev.Input.Planes) || next.Input.AlwaysUseBuffer != prev.Input.AlwaysUseBuffer {
		a.rebuild = true
		if a.status == Waiting {
			a.rebuildManager()
		}
	}

	a.logger.Info("config applied", "fps", next.Input.FPS, "output", next.Output.Mode)
	return nil
}

func (a *Application) logStats() {
	s := a.metrics.Snapshot()
	k := a.manager.Metrics().Snapshot()
	a.logger.Debug("frame stats",
		"fps", s.FPS,
		"frames", s.FramesTotal,
		"overruns", s.Overruns,
		"peak_step", s.PeakStep,
		"sessions", s.Sessions,
		"commits", k.CommitsTotal,
		"p99_tick", k.P99TickLatency,
	)
}

// Frame returns the state for the renderer.
func (a *Application) Frame() Frame {
	return Frame{
		Status:     a.status,
		Session:    a.session,
		View:       a.manager.View(),
		LastCommit: a.lastCommit,
		Err:        a.lastErr,
		FPS:        a.metrics.FPS(),
	}
}

// Status returns the session status.
func (a *Application) Status() Status {
	return a.status
}

// Session returns the ID of the open keyboard session, or "" while Waiting.
func (a *Application) Session() string {
	return a.session
}

// Config returns the active configuration.
func (a *Application) Config() *config.Config {
	return a.cfg
}

// Manager returns the keyboard.
func (a *Application) Manager() *input.Manager {
	return a.manager
}

// Metrics returns the frame metrics.
func (a *Application) Metrics() *Metrics {
	return a.metrics
}
