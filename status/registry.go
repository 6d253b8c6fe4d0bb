// Package status holds lock-free runtime counters shared between the simulation
// goroutine, the input poller, and the renderer's debug line
package status

import (
	"fmt"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyTicks          = "engine.ticks"
	KeyTickRate       = "engine.tps"
	KeyMode           = "engine.mode"
	KeyCaptureMisses  = "capture.misses"
	KeyCaptureFrames  = "capture.frames"
	KeyCaptureSource  = "capture.source"
	KeyCaptureLost    = "capture.lost"
	KeyParticlesLive  = "particles.live"
	KeyCuesPlayed     = "audio.played"
	KeyCuesDropped    = "audio.dropped"
	KeyAudioEnabled   = "audio.enabled"
	KeyFramesRendered = "render.frames"
	KeyCommands       = "input.commands"
)

// Registry is the central metrics facade
// Callers cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as key=value, grouped by type and sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return lines
}
