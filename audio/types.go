package audio

import (
	"errors"

	"github.com/lixenwraith/gesture-arcade/events"
)

// SoundType represents the one-shot effects the games cue
type SoundType int

const (
	SoundGrab     SoundType = iota // Block picked up
	SoundDrop                      // Block let go off target
	SoundSuccess                   // Block placed
	SoundLevelUp                   // Level advanced
	SoundGameOver                  // Session ended
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"grab", "drop", "success", "level_up", "game_over"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// cueSounds maps simulation cues to effects
var cueSounds = map[events.EventType]SoundType{
	events.EventCueGrab:     SoundGrab,
	events.EventCueDrop:     SoundDrop,
	events.EventCueSuccess:  SoundSuccess,
	events.EventCueLevelUp:  SoundLevelUp,
	events.EventCueGameOver: SoundGameOver,
}

// CueSound returns the effect for a cue event
func CueSound(t events.EventType) (SoundType, bool) {
	s, ok := cueSounds[t]
	return s, ok
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrSpeakerInit   = errors.New("speaker initialization failed")
)
