package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Grab Sound
const (
	GrabSoundDuration = 60 * time.Millisecond
	GrabSoundAttack   = 5 * time.Millisecond
	GrabSoundRelease  = 30 * time.Millisecond
)

// Drop Sound
const (
	DropSoundDuration = 150 * time.Millisecond
	DropSoundAttack   = 5 * time.Millisecond
	DropSoundRelease  = 60 * time.Millisecond
)

// Success Sound
const (
	SuccessNote1Duration = 80 * time.Millisecond
	SuccessNote2Duration = 280 * time.Millisecond
	SuccessAttack        = 5 * time.Millisecond
	SuccessNote1Release  = 40 * time.Millisecond
	SuccessNote2Release  = 200 * time.Millisecond
)

// Level Up Sound
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpAttack       = 5 * time.Millisecond
	LevelUpRelease      = 50 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond
)
