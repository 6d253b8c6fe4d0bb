package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gesture-arcade/events"
	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/status"
)

// SoundManager plays cue effects through one speaker mixer
// Every method is safe before Initialize or after it failed; playback then becomes a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool

	played  *atomic.Int64
	dropped *atomic.Int64
	enabled *atomic.Bool
}

// NewSoundManager creates a manager; reg may be nil
func NewSoundManager(cfg *Config, reg *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &SoundManager{
		cfg:     cfg,
		mixer:   &beep.Mixer{},
		played:  reg.Ints.Get(status.KeyCuesPlayed),
		dropped: reg.Ints.Get(status.KeyCuesDropped),
		enabled: reg.Bools.Get(status.KeyAudioEnabled),
	}
}

// Initialize opens the speaker; repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.rate())
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.enabled.Store(true)
	return nil
}

// Cleanup stops all sounds; the manager degrades to a no-op afterwards
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
	sm.enabled.Store(false)
}

// IsInitialized reports whether playback reaches the speaker
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play mixes one effect in; returns false when it was dropped
func (sm *SoundManager) Play(s SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.dropped.Add(1)
		return false
	}

	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		sm.dropped.Add(1)
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
	return true
}

// EventTypes lists the cues this manager sounds
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCueGrab,
		events.EventCueDrop,
		events.EventCueSuccess,
		events.EventCueLevelUp,
		events.EventCueGameOver,
	}
}

// HandleEvent plays the effect of a cue; both games share one sound set
func (sm *SoundManager) HandleEvent(_ string, ev events.GameEvent) {
	if s, ok := CueSound(ev.Type); ok {
		sm.Play(s)
	}
}
