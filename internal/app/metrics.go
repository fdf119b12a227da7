package app

import (
	"sync"
	"sync/atomic"
	"time"
)

// fpsWindow is the number of recent frames the FPS average is taken over.
const fpsWindow = 128

// Metrics tracks frame loop performance.
type Metrics struct {
	framesTotal atomic.Uint64
	overruns    atomic.Uint64
	sessions    atomic.Uint64
	peakStep    atomic.Int64

	mu     sync.Mutex
	stamps [fpsWindow]time.Time
	next   int
	count  int

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records a frame that started at start and whose step took
// step. A step longer than budget counts as an overrun.
func (m *Metrics) RecordFrame(start time.Time, step, budget time.Duration) {
	m.framesTotal.Add(1)
	if budget > 0 && step > budget {
		m.overruns.Add(1)
	}

	ns := step.Nanoseconds()
	for {
		current := m.peakStep.Load()
		if ns <= current || m.peakStep.CompareAndSwap(current, ns) {
			break
		}
	}

	m.mu.Lock()
	m.stamps[m.next] = start
	m.next = (m.next + 1) % fpsWindow
	if m.count < fpsWindow {
		m.count++
	}
	m.mu.Unlock()
}

// RecordSession records a keyboard opening.
func (m *Metrics) RecordSession() {
	m.sessions.Add(1)
}

// FPS returns the average frame rate over the recent window.
func (m *Metrics) FPS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.count < 2 {
		return 0
	}
	oldest := m.stamps[(m.next-m.count+fpsWindow)%fpsWindow]
	newest := m.stamps[(m.next-1+fpsWindow)%fpsWindow]
	span := newest.Sub(oldest)
	if span <= 0 {
		return 0
	}
	return float64(m.count-1) / span.Seconds()
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	FramesTotal uint64
	Overruns    uint64
	Sessions    uint64
	PeakStep    time.Duration
	FPS         float64
	Uptime      time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		FramesTotal: m.framesTotal.Load(),
		Overruns:    m.overruns.Load(),
		Sessions:    m.sessions.Load(),
		PeakStep:    time.Duration(m.peakStep.Load()),
		FPS:         m.FPS(),
		Uptime:      time.Since(m.startTime),
	}
}
