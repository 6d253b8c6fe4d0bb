package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider is the clock source for session timers
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually stepped clock for session tests
// Safe for use from the tick goroutine and a test goroutine at once
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64
}

// NewMockTimeProvider returns a clock frozen at start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

// Now returns start plus every Advance so far
func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// Advance moves the clock forward; negative durations are ignored
func (m *MockTimeProvider) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.offset.Add(int64(d))
}
