package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/input"
	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
	"github.com/clekey/clekeyOVR/internal/output"
)

type fakeDevice struct {
	sticks  [2]hand.Vec2
	clicks  [2]bool
	buttons map[plane.HardButton]bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{buttons: make(map[plane.HardButton]bool)}
}

func (d *fakeDevice) Stick(side hand.Side) hand.Vec2 { return d.sticks[side] }
func (d *fakeDevice) Clicking(side hand.Side) bool { return d.clicks[side] }
func (d *fakeDevice) Button(b plane.HardButton) bool { return d.buttons[b] }
func (d *fakeDevice) hold(b plane.HardButton, on bool) { d.buttons[b] = on }

// point aims both sticks at the sectors for row and col.
func (d *fakeDevice) point(row, col int) {
	d.sticks = [2]hand.Vec2{sectorVec(row), sectorVec(col)}
}

func sectorVec(sector int) hand.Vec2 {
	a := float64(sector) * math.Pi / 4
	return hand.Vec2{X: math.Sin(a), Y: math.Cos(a)}
}

// quitDevice asks to quit on its n-th poll.
type quitDevice struct {
	*fakeDevice
	polls int
	n     int
}

func (d *quitDevice) Poll() error {
	d.polls++
	if d.polls >= d.n {
		return input.ErrQuit
	}
	return nil
}

type fakeRenderer struct {
	frames []Frame
	ui     []config.UIConfig
	err    error
}

func (r *fakeRenderer) Render(f Frame) error {
	r.frames = append(r.frames, f)
	return r.err
}

func (r *fakeRenderer) ApplyUI(ui config.UIConfig) error {
	r.ui = append(r.ui, ui)
	return nil
}

func newTestApp(t *testing.T, dev input.Device, sink input.Sink) *Application {
	t.Helper()
	a, err := New(Options{Device: dev, Sink: sink})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func step(t *testing.T, a *Application) {
	t.Helper()
	if err := a.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
}

// open presses and releases the Close button to show the keyboard.
func open(t *testing.T, a *Application, dev *fakeDevice) {
	t.Helper()
	dev.hold(plane.ButtonClose, true)
	step(t, a)
	dev.hold(plane.ButtonClose, false)
	step(t, a)
	if a.Status() != Inputting {
		t.Fatalf("Status() after open = %v, want %v", a.Status(), Inputting)
	}
}

// press commits one cell with the left click and releases it again.
func press(t *testing.T, a *Application, dev *fakeDevice, row, col int) {
	t.Helper()
	dev.point(row, col)
	dev.clicks[hand.Left] = true
	step(t, a)
	dev.clicks[hand.Left] = false
	step(t, a)
}

func TestNewRequiresDevice(t *testing.T) {
	_, err := New(Options{})
	if !errors.Is(err, ErrNoDevice) {
		t.Errorf("New() error = %v, want ErrNoDevice", err)
	}
	if !errors.Is(err, ErrInitialization) {
		t.Errorf("New() error = %v, want ErrInitialization", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Input.FPS = 0
	_, err := New(Options{Config: cfg, Device: newFakeDevice()})
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("New() error = %v, want ErrValidationFailed", err)
	}
}

func TestNewBuildsSinkFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Mode = output.ModeLog
	a, err := New(Options{Config: cfg, Device: newFakeDevice()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.sink == nil || !a.ownSink {
		t.Errorf("sink = %v (own %v), want a built sink", a.sink, a.ownSink)
	}
}

func TestOpenOnCloseButton(t *testing.T) {
	dev := newFakeDevice()
	a := newTestApp(t, dev, output.NewRecorder(0))

	step(t, a)
	if a.Status() != Waiting {
		t.Fatalf("Status() = %v, want %v", a.Status(), Waiting)
	}
	if a.Session() != "" {
		t.Errorf("Session() while waiting = %q, want empty", a.Session())
	}

	dev.hold(plane.ButtonClose, true)
	step(t, a)
	if a.Status() != Inputting {
		t.Fatalf("Status() = %v, want %v", a.Status(), Inputting)
	}
	if a.Session() == "" {
		t.Error("Session() = empty, want an ID")
	}

	// The press that opened the keyboard must not close it again.
	step(t, a)
	if a.Status() != Inputting {
		t.Errorf("Status() while held = %v, want %v", a.Status(), Inputting)
	}
	if got := a.Metrics().Snapshot().Sessions; got != 1 {
		t.Errorf("Sessions = %d, want 1", got)
	}
}

func TestClicksWhileWaitingAreIgnored(t *testing.T) {
	dev := newFakeDevice()
	rec := output.NewRecorder(0)
	a := newTestApp(t, dev, rec)

	dev.point(0, 0)
	dev.clicks[hand.Left] = true
	step(t, a)
	dev.hold(plane.ButtonClose, true)
	step(t, a)

	// Still holding the click from before the keyboard opened.
	step(t, a)
	if got := a.Manager().ActivePlane().Buffer(); got != "" {
		t.Errorf("Buffer() = %q, want empty", got)
	}
}

func TestTypeAndFlush(t *testing.T) {
	dev := newFakeDevice()
	rec := output.NewRecorder(0)
	a := newTestApp(t, dev, rec)
	open(t, a, dev)

	press(t, a, dev, 0, 0)
	if got := a.Frame().View.Buffer; got != "あ" {
		t.Errorf("View.Buffer = %q, want %q", got, "あ")
	}

	press(t, a, dev, 5, 7)
	last, ok := rec.Last()
	if !ok || last.Kind != output.EventCommit || last.Text != "あ" {
		t.Errorf("Last() = %+v, %v, want commit of %q", last, ok, "あ")
	}
	if got := a.Frame().LastCommit; got != "あ" {
		t.Errorf("Frame().LastCommit = %q, want %q", got, "あ")
	}
}

func TestCloseButtonReturnsToWaiting(t *testing.T) {
	dev := newFakeDevice()
	a := newTestApp(t, dev, output.NewRecorder(0))
	open(t, a, dev)

	dev.hold(plane.ButtonClose, true)
	step(t, a)
	if a.Status() != Waiting {
		t.Fatalf("Status() = %v, want %v", a.Status(), Waiting)
	}
	if a.Session() != "" {
		t.Errorf("Session() = %q, want empty", a.Session())
	}

	// Holding the button after closing does not reopen.
	step(t, a)
	if a.Status() != Waiting {
		t.Errorf("Status() while held = %v, want %v", a.Status(), Waiting)
	}
}

func TestCloseCellReturnsToWaiting(t *testing.T) {
	dev := newFakeDevice()
	rec := output.NewRecorder(0)
	a := newTestApp(t, dev, rec)
	open(t, a, dev)

	dev.point(5, 6)
	dev.clicks[hand.Left] = true
	step(t, a)
	if a.Status() != Waiting {
		t.Errorf("Status() = %v, want %v", a.Status(), Waiting)
	}
	if got := len(rec.Events()); got != 0 {
		t.Errorf("Events() = %d, want none", got)
	}
}

func TestSuspend(t *testing.T) {
	dev := newFakeDevice()
	a := newTestApp(t, dev, output.NewRecorder(0))
	open(t, a, dev)

	dev.hold(plane.ButtonSuspend, true)
	step(t, a)
	if a.Status() != Suspending {
		t.Fatalf("Status() = %v, want %v", a.Status(), Suspending)
	}

	dev.point(0, 0)
	dev.clicks[hand.Left] = true
	step(t, a)
	if got := a.Manager().ActivePlane().Buffer(); got != "" {
		t.Errorf("Buffer() while suspended = %q, want empty", got)
	}

	dev.hold(plane.ButtonSuspend, false)
	step(t, a)
	if a.Status() != Inputting {
		t.Fatalf("Status() after release = %v, want %v", a.Status(), Inputting)
	}

	// The click held through the suspension is not a new press.
	step(t, a)
	if got := a.Manager().ActivePlane().Buffer(); got != "" {
		t.Errorf("Buffer() after resume = %q, want empty", got)
	}
}

type failingSink struct{}

var errSinkDown = errors.New("sink down")

func (failingSink) Commit(string) error { return errSinkDown }
func (failingSink) Backspace() error { return errSinkDown }
func (failingSink) NewLine() error { return errSinkDown }

func TestSinkFailureIsReported(t *testing.T) {
	dev := newFakeDevice()
	a := newTestApp(t, dev, failingSink{})
	open(t, a, dev)

	press(t, a, dev, 0, 0)
	press(t, a, dev, 5, 7)

	f := a.Frame()
	if !errors.Is(f.Err, errSinkDown) {
		t.Errorf("Frame().Err = %v, want errSinkDown", f.Err)
	}
	var se *input.SinkError
	if !errors.As(f.Err, &se) || se.Op != "commit" {
		t.Errorf("Frame().Err = %v, want a commit SinkError", f.Err)
	}
	if f.View.Buffer != "あ" {
		t.Errorf("View.Buffer = %q, want %q kept", f.View.Buffer, "あ")
	}

	// The next successful action clears the error.
	press(t, a, dev, 0, 1)
	if f := a.Frame(); f.Err != nil {
		t.Errorf("Frame().Err after typing = %v, want nil", f.Err)
	}
}

func TestRendererReceivesFrames(t *testing.T) {
	dev := newFakeDevice()
	r := &fakeRenderer{}
	a, err := New(Options{Device: dev, Sink: output.NewRecorder(0), Renderer: r})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(r.ui) != 1 || r.ui[0] != config.Default().UI {
		t.Errorf("ApplyUI() calls = %v, want the default UI", r.ui)
	}

	open(t, a, dev)
	if len(r.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(r.frames))
	}
	if got := r.frames[1]; got.Status != Inputting || got.View.Plane != plane.NameJapanese {
		t.Errorf("frame = %v on %q, want inputting on %q", got.Status, got.View.Plane, plane.NameJapanese)
	}
}

func TestRendererErrorStopsStep(t *testing.T) {
	errDraw := errors.New("draw failed")
	a, err := New(Options{Device: newFakeDevice(), Sink: output.NewRecorder(0), Renderer: &fakeRenderer{err: errDraw}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.Step(); !errors.Is(err, errDraw) {
		t.Errorf("Step() error = %v, want errDraw", err)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	cfg := config.Default()
	cfg.Input.FPS = 1000
	dev := &quitDevice{fakeDevice: newFakeDevice(), n: 3}
	a, err := New(Options{Config: cfg, Device: dev, Sink: output.NewRecorder(0)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := a.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
	if dev.polls != 3 {
		t.Errorf("polls = %d, want 3", dev.polls)
	}
	if got := a.Metrics().Snapshot().FramesTotal; got != 2 {
		t.Errorf("FramesTotal = %d, want 2", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a := newTestApp(t, newFakeDevice(), output.NewRecorder(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
}

func TestRunAlreadyRunning(t *testing.T) {
	a := newTestApp(t, newFakeDevice(), output.NewRecorder(0))
	a.running.Store(true)
	if err := a.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Run() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestRunAppliesReloads(t *testing.T) {
	cfg := config.Default()
	cfg.Input.FPS = 1000
	reloads := make(chan *config.Config, 1)
	next := cfg.Clone()
	next.Input.Planes = []string{plane.NameEnglish}
	reloads <- next

	dev := &quitDevice{fakeDevice: newFakeDevice(), n: 50}
	a, err := New(Options{Config: cfg, Device: dev, Sink: output.NewRecorder(0), Reloads: reloads})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := a.Manager().ActivePlane().Name(); got != plane.NameEnglish {
		t.Errorf("ActivePlane() = %q, want %q", got, plane.NameEnglish)
	}
}

func TestApplyConfigWhileWaiting(t *testing.T) {
	a := newTestApp(t, newFakeDevice(), output.NewRecorder(0))

	cfg := config.Default()
	cfg.Input.Planes = []string{plane.NameEnglish, plane.NameJapanese}
	cfg.Haptics.Enabled = false
	if err := a.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if got := a.Manager().ActivePlane().Name(); got != plane.NameEnglish {
		t.Errorf("ActivePlane() = %q, want %q", got, plane.NameEnglish)
	}
	if a.Config().Haptics.Enabled {
		t.Error("Config().Haptics.Enabled = true, want false")
	}

	// The stored config is a copy.
	cfg.Input.Planes[0] = plane.NameJapanese
	if got := a.Config().Input.Planes[0]; got != plane.NameEnglish {
		t.Errorf("Config().Input.Planes[0] = %q, want %q", got, plane.NameEnglish)
	}
}

func TestApplyConfigDefersRebuildWhileOpen(t *testing.T) {
	dev := newFakeDevice()
	a := newTestApp(t, dev, output.NewRecorder(0))
	open(t, a, dev)
	press(t, a, dev, 0, 0)

	cfg := config.Default()
	cfg.Input.Planes = []string{plane.NameEnglish}
	if err := a.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if got := a.Manager().ActivePlane().Buffer(); got != "あ" {
		t.Errorf("Buffer() = %q, want %q kept until close", got, "あ")
	}

	dev.hold(plane.ButtonClose, true)
	step(t, a)
	if a.Status() != Waiting {
		t.Fatalf("Status() = %v, want %v", a.Status(), Waiting)
	}
	if got := a.Manager().ActivePlane().Name(); got != plane.NameEnglish {
		t.Errorf("ActivePlane() after close = %q, want %q", got, plane.NameEnglish)
	}
}

func TestApplyConfigRejectsInvalid(t *testing.T) {
	a := newTestApp(t, newFakeDevice(), output.NewRecorder(0))

	cfg := config.Default()
	cfg.Output.Mode = "printer"
	if err := a.ApplyConfig(cfg); !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("ApplyConfig() error = %v, want ErrValidationFailed", err)
	}
	if got := a.Config().Output.Mode; got != config.Default().Output.Mode {
		t.Errorf("Config().Output.Mode = %q, want unchanged", got)
	}
}

func TestApplyConfigUpdatesRenderer(t *testing.T) {
	r := &fakeRenderer{}
	a, err := New(Options{Device: newFakeDevice(), Sink: output.NewRecorder(0), Renderer: r})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg := config.Default()
	cfg.UI.Mode = config.UIModeOneRing
	if err := a.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if len(r.ui) != 2 || r.ui[1].Mode != config.UIModeOneRing {
		t.Errorf("ApplyUI() calls = %v, want one-ring last", r.ui)
	}

	// Unchanged UI settings are not re-applied.
	if err := a.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if len(r.ui) != 2 {
		t.Errorf("ApplyUI() calls = %d, want 2", len(r.ui))
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Waiting, "waiting"},
		{Inputting, "inputting"},
		{Suspending, "suspending"},
		{Status(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
	if Waiting.Visible() || !Suspending.Visible() {
		t.Error("Visible() = wrong, want only Waiting hidden")
	}
}
