package events

import (
	"time"
)

// EventType represents the type of arcade event
type EventType int

const (
	// EventNone is the zero value; FSM transitions on EventNone are evaluated every tick
	EventNone EventType = iota

	// EventStart begins or resumes a session from the menu
	// Trigger: input.Poller (Enter, Space) | Consumer: mode FSM | Payload: nil
	EventStart

	// EventRestart resets all session state after a game over
	// Trigger: input.Poller (r) | Consumer: mode FSM | Payload: nil
	EventRestart

	// EventToggleMenu pauses into the menu or resumes a paused session
	// Trigger: input.Poller (Esc, m, p) | Consumer: mode FSM | Payload: nil
	EventToggleMenu

	// EventQuit stops Arcade.Run; SIGINT/SIGTERM cancel its context instead of pushing this
	// Trigger: input.Poller (q, Ctrl+C, Ctrl+Q) | Consumer: Arcade | Payload: nil
	EventQuit

	// EventThemeSelect cycles the palette of the active game, menu only
	// Trigger: input.Poller (t) | Consumer: Arcade | Payload: nil
	EventThemeSelect

	// EventDifficultySelect cycles difficulty, menu only; applies on next session reset
	// Trigger: input.Poller (d) | Consumer: Arcade | Payload: nil
	EventDifficultySelect

	// EventGameSelect switches between Snake and Tower, menu only
	// Trigger: input.Poller (Tab, g, 1, 2) | Consumer: Arcade | Payload: *GameSelectPayload or nil to cycle
	EventGameSelect

	// EventCueGrab signals a block was picked up
	// Trigger: tower game | Consumer: audio | Payload: nil
	EventCueGrab

	// EventCueDrop signals a held block was released outside the zone
	// Trigger: tower game | Consumer: audio | Payload: nil
	EventCueDrop

	// EventCueSuccess signals a block settled on the tower
	// Trigger: tower game | Consumer: audio | Payload: nil
	EventCueSuccess

	// EventCueLevelUp signals level progression in either game
	// Trigger: tower ceiling reached, snake score threshold | Consumer: audio | Payload: nil
	EventCueLevelUp

	// EventCueGameOver signals a terminal game condition
	// Trigger: snake self-collision, tower level cap | Consumer: audio | Payload: *GameOverPayload
	EventCueGameOver

	// EventSessionAbort ends a session without a game outcome and returns to the menu
	// Trigger: Arcade when the hand capture is lost | Consumer: mode FSM | Payload: nil
	EventSessionAbort
)

// GameEvent represents a single event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick number at push time
	Timestamp time.Time
}

// Sink receives events; EventQueue implements it and simulations depend only on this
type Sink interface {
	Push(event GameEvent)
}

// Discard is a Sink that drops everything
var Discard Sink = discard{}

type discard struct{}

func (discard) Push(GameEvent) {}

// IsCommand reports whether t is an input command rather than a simulation cue
func (t EventType) IsCommand() bool {
	return t >= EventStart && t <= EventGameSelect
}

// IsCue reports whether t is an audio cue
func (t EventType) IsCue() bool {
	return t >= EventCueGrab && t <= EventCueGameOver
}
