package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/events"
)

// KeyEntry is the command a key produces; Game is set only for direct game selection
type KeyEntry struct {
	Type events.EventType
	Game string
}

// KeyTable maps keys to arcade commands
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Escape, Tab)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:  {Type: events.EventStart},
			tcell.KeyEscape: {Type: events.EventToggleMenu},
			tcell.KeyCtrlC:  {Type: events.EventQuit},
			tcell.KeyCtrlQ:  {Type: events.EventQuit},
			tcell.KeyTab:    {Type: events.EventGameSelect},
		},
		Runes: map[rune]KeyEntry{
			' ': {Type: events.EventStart},
			'r': {Type: events.EventRestart},
			'm': {Type: events.EventToggleMenu},
			'p': {Type: events.EventToggleMenu},
			'q': {Type: events.EventQuit},
			't': {Type: events.EventThemeSelect},
			'd': {Type: events.EventDifficultySelect},
			'g': {Type: events.EventGameSelect},
			'1': {Type: events.EventGameSelect, Game: config.GameSnake.String()},
			'2': {Type: events.EventGameSelect, Game: config.GameTower.String()},
		},
	}
}

// Lookup resolves a key event to a command
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() != tcell.KeyRune {
		e, ok := kt.SpecialKeys[ev.Key()]
		return e, ok
	}
	e, ok := kt.Runes[unicode.ToLower(ev.Rune())]
	return e, ok
}

// Event builds the queued command for an entry
func (e KeyEntry) Event() events.GameEvent {
	ev := events.GameEvent{Type: e.Type}
	if e.Game != "" {
		ev.Payload = &events.GameSelectPayload{Game: e.Game}
	}
	return ev
}
