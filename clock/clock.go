// Package clock supplies the time source the simulation ticks against.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time. Successive readings must not go backwards.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock. time.Now carries a monotonic reading, so
// differences between two values are immune to wall-clock jumps.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual starts a manual clock at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.now = m.now.Add(d)
	}
	return m.now
}

// Set moves the clock to t if t is not before the current reading.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.After(m.now) {
		m.now = t
	}
}

// Frame measures the time between successive ticks.
type Frame struct {
	clock Clock
	last  time.Time
}

// NewFrame starts measuring from the clock's current reading.
func NewFrame(c Clock) *Frame {
	return &Frame{clock: c, last: c.Now()}
}

// Tick reads the clock and returns the reading with the time since the
// previous tick.
func (f *Frame) Tick() (time.Time, time.Duration) {
	now := f.clock.Now()
	elapsed := now.Sub(f.last)
	if elapsed < 0 {
		elapsed = 0
	}
	f.last = now
	return now, elapsed
}
