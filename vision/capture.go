// Package vision supplies hand landmarks to the arcade
//
// A Capture yields frames of normalized landmarks, a Tracker reduces a frame to the
// wrist and index fingertip, and a Sampler turns that into one gesture.Signal per tick.
// Two captures exist: Feed reads a websocket stream from an external hand-tracking
// process, Pointer synthesizes a hand from terminal mouse events.
package vision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/gesture-arcade/gesture"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/status"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Sentinel errors
var (
	// ErrCaptureUnavailable means the source could not be opened; terminal for the session
	ErrCaptureUnavailable = errors.New("capture unavailable")
	// ErrCaptureClosed means an open source went away; terminal for the session
	ErrCaptureClosed = errors.New("capture closed")
	// ErrNoFrame means nothing fresh is available this tick; transient
	ErrNoFrame = errors.New("no frame")
)

// Landmark is one normalized skeleton point, x and y in [0,1] of the camera image
type Landmark struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	Z float64 `json:"z,omitempty" msgpack:"z,omitempty"`
}

// Frame is one tracking result; Landmarks is empty when no hand was found
type Frame struct {
	Seq       uint64     `json:"seq" msgpack:"seq"`
	Timestamp int64      `json:"ts" msgpack:"ts"` // Producer clock, unix milliseconds
	Landmarks []Landmark `json:"landmarks" msgpack:"landmarks"`
}

// Hand is the part of the skeleton the games read
type Hand struct {
	Wrist vmath.Vec2
	Tip   vmath.Vec2
}

// Capture is a source of frames
// Read never blocks; it returns the latest frame or ErrNoFrame
type Capture interface {
	Open(ctx context.Context) error
	Read() (Frame, error)
	Close() error
}

// Tracker extracts a hand from a frame
type Tracker interface {
	Track(f Frame) (Hand, bool)
}

// LandmarkTracker reads wrist and index fingertip by skeleton index
type LandmarkTracker struct {
	// Mirror flips x so moving the hand right moves the cursor right on a front camera
	Mirror bool
}

// Track returns false for incomplete skeletons or non-finite points
func (t LandmarkTracker) Track(f Frame) (Hand, bool) {
	if len(f.Landmarks) <= parameter.LandmarkIndexTip {
		return Hand{}, false
	}
	h := Hand{
		Wrist: t.point(f.Landmarks[parameter.LandmarkWrist]),
		Tip:   t.point(f.Landmarks[parameter.LandmarkIndexTip]),
	}
	if !h.Wrist.Finite() || !h.Tip.Finite() {
		return Hand{}, false
	}
	return h, true
}

func (t LandmarkTracker) point(l Landmark) vmath.Vec2 {
	if t.Mirror {
		return vmath.Vec2{X: 1 - l.X, Y: l.Y}
	}
	return vmath.Vec2{X: l.X, Y: l.Y}
}

// Sampler adapts a Capture and Tracker to the engine's per-tick hand source
type Sampler struct {
	capture Capture
	tracker Tracker
	frames  *atomic.Int64
}

// NewSampler wires a capture to a tracker; reg may be nil
func NewSampler(c Capture, t Tracker, reg *status.Registry) *Sampler {
	if t == nil {
		t = LandmarkTracker{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Sampler{capture: c, tracker: t, frames: reg.Ints.Get(status.KeyCaptureFrames)}
}

// Sample reads one frame; missing frames and missing hands are gesture.NoSignal
// Only a lost capture is returned as an error
func (s *Sampler) Sample() (gesture.Signal, error) {
	f, err := s.capture.Read()
	if err != nil {
		if errors.Is(err, ErrNoFrame) {
			return gesture.NoSignal, nil
		}
		return gesture.NoSignal, fmt.Errorf("read frame: %w", err)
	}
	s.frames.Add(1)

	h, ok := s.tracker.Track(f)
	if !ok {
		return gesture.NoSignal, nil
	}
	return gesture.FromLandmarks(h.Wrist, h.Tip), nil
}

// Close releases the capture
func (s *Sampler) Close() error {
	return s.capture.Close()
}

// Reopen closes the capture and opens it again, for a new session after a loss
func (s *Sampler) Reopen(ctx context.Context) error {
	if err := s.capture.Close(); err != nil {
		log.Printf("capture close before reopen: %v", err)
	}
	return s.capture.Open(ctx)
}

// skeleton builds a complete landmark set with only wrist and fingertip placed
func skeleton(wrist, tip vmath.Vec2) []Landmark {
	lm := make([]Landmark, parameter.LandmarkCount)
	for i := range lm {
		lm[i] = Landmark{X: wrist.X, Y: wrist.Y}
	}
	lm[parameter.LandmarkIndexTip] = Landmark{X: tip.X, Y: tip.Y}
	return lm
}
