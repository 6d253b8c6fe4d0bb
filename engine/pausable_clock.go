package engine

import (
	"time"
)

// PausableClock measures session play time, frozen while the game sits in its menu
// Owned by the simulation goroutine; no locking
type PausableClock struct {
	source TimeProvider

	start           time.Time
	paused          bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock reading from source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{source: source, start: source.Now()}
}

// Restart zeroes elapsed time and resumes
func (pc *PausableClock) Restart() {
	pc.start = pc.source.Now()
	pc.paused = false
	pc.pauseStart = time.Time{}
	pc.totalPausedTime = 0
}

// Pause stops elapsed time advancement; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues elapsed time advancement; repeated calls are no-ops
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// Elapsed returns play time excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	end := pc.source.Now()
	if pc.paused {
		end = pc.pauseStart
	}
	return end.Sub(pc.start) - pc.totalPausedTime
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
