// Package state provides thread-safe state for the watch mode.
package state

import (
	"sync"
	"time"

	"github.com/litescript/planettime/internal/planettime"
)

// Config describes the observation the watch mode tracks.
type Config struct {
	LatitudeDeg  float64
	LongitudeDeg float64
}

// Snapshot is a point-in-time copy of the managed state, safe to read
// without locks.
type Snapshot struct {
	Config      Config
	Report      planettime.DayReport
	ComputedAt  time.Time
	ComputeTime time.Duration
	HasReport   bool
}

// Manager holds the latest computed day report behind a lock. The core math
// is pure; the manager exists so the UI goroutine and the recompute ticker
// can share results without coordination.
type Manager struct {
	mu sync.RWMutex

	cfg         Config
	report      planettime.DayReport
	computedAt  time.Time
	computeTime time.Duration
	hasReport   bool
}

// New creates a manager for the given observation config.
func New(cfg Config) *Manager {
	return &Manager{cfg: cfg}
}

// Recompute rebuilds the day report for the civil day containing now.
func (m *Manager) Recompute(now time.Time) {
	start := time.Now()
	report := planettime.ComputeDayReport(now, m.cfg.LatitudeDeg, m.cfg.LongitudeDeg)
	elapsed := time.Since(start)

	m.mu.Lock()
	m.report = report
	m.computedAt = now
	m.computeTime = elapsed
	m.hasReport = true
	m.mu.Unlock()
}

// NeedsRecompute reports whether the cached report is for a different civil
// day than now, or missing entirely.
func (m *Manager) NeedsRecompute(now time.Time) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasReport {
		return true
	}
	y1, m1, d1 := m.computedAt.Date()
	y2, m2, d2 := now.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

// GetSnapshot returns a copy of the current state.
func (m *Manager) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Config:      m.cfg,
		Report:      m.report,
		ComputedAt:  m.computedAt,
		ComputeTime: m.computeTime,
		HasReport:   m.hasReport,
	}
}
