package input

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks keyboard activity. It is safe for concurrent reads while
// the frame loop records.
type Metrics struct {
	ticksTotal    atomic.Uint64
	cellsTotal    atomic.Uint64
	commitsTotal  atomic.Uint64
	commitErrors  atomic.Uint64
	planeSwitches atomic.Uint64

	mu         sync.RWMutex
	latencies  []time.Duration
	latencyIdx int

	peakLatency atomic.Int64

	startTime time.Time
}

const maxLatencySamples = 512

// NewMetrics creates a metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		latencies: make([]time.Duration, maxLatencySamples),
		startTime: time.Now(),
	}
}

// RecordTick records one tick and its processing time.
func (m *Metrics) RecordTick(latency time.Duration) {
	m.ticksTotal.Add(1)

	ns := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if ns <= current || m.peakLatency.CompareAndSwap(current, ns) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % maxLatencySamples
	m.mu.Unlock()
}

// RecordCell records a committed cell.
func (m *Metrics) RecordCell() { m.cellsTotal.Add(1) }

// RecordCommit records text delivered to the sink.
func (m *Metrics) RecordCommit() { m.commitsTotal.Add(1) }

// RecordCommitError records a delivery the sink rejected.
func (m *Metrics) RecordCommitError() { m.commitErrors.Add(1) }

// RecordPlaneSwitch records a plane change.
func (m *Metrics) RecordPlaneSwitch() { m.planeSwitches.Add(1) }

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	TicksTotal    uint64
	CellsTotal    uint64
	CommitsTotal  uint64
	CommitErrors  uint64
	PlaneSwitches uint64

	AvgTickLatency  time.Duration
	P99TickLatency  time.Duration
	PeakTickLatency time.Duration

	TicksPerSecond float64
	Uptime         time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	samples := make([]time.Duration, 0, len(m.latencies))
	for _, l := range m.latencies {
		if l > 0 {
			samples = append(samples, l)
		}
	}
	start := m.startTime
	m.mu.RUnlock()

	ticks := m.ticksTotal.Load()
	snap := MetricsSnapshot{
		TicksTotal:      ticks,
		CellsTotal:      m.cellsTotal.Load(),
		CommitsTotal:    m.commitsTotal.Load(),
		CommitErrors:    m.commitErrors.Load(),
		PlaneSwitches:   m.planeSwitches.Load(),
		PeakTickLatency: time.Duration(m.peakLatency.Load()),
		Uptime:          time.Since(start),
	}
	if snap.Uptime > 0 {
		snap.TicksPerSecond = float64(ticks) / snap.Uptime.Seconds()
	}
	snap.AvgTickLatency, snap.P99TickLatency = latencyStats(samples)
	return snap
}

func latencyStats(samples []time.Duration) (avg, p99 time.Duration) {
	if len(samples) == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, l := range samples {
		sum += l
	}
	avg = sum / time.Duration(len(samples))

	slices.Sort(samples)
	idx := min(int(float64(len(samples))*0.99), len(samples)-1)
	return avg, samples[idx]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.ticksTotal.Store(0)
	m.cellsTotal.Store(0)
	m.commitsTotal.Store(0)
	m.commitErrors.Store(0)
	m.planeSwitches.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	clear(m.latencies)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
