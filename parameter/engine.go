package parameter

import "time"

// Loop Timing
const (
	// TowerTickInterval is the fixed simulation rate of the tower game (~60 FPS)
	TowerTickInterval = time.Second / 60

	// MenuTickInterval is the redraw rate while a game sits in its menu or game over screen
	MenuTickInterval = time.Second / 30

	// MinTickInterval floors variable tick rates so a runaway speed stat cannot spin the loop
	MinTickInterval = 10 * time.Millisecond
)

// Screen Layout
const (
	// ScreenHUDRows are reserved above the play area
	ScreenHUDRows = 1

	// ScreenFooterRows are reserved below the play area
	ScreenFooterRows = 1
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Logging
const (
	// LogMaxSize is the size at which the debug log is rotated
	LogMaxSize = 10 * 1024 * 1024
)
