package events

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	RegisterType("tick", EventNone)
	RegisterType("start", EventStart)
	RegisterType("restart", EventRestart)
	RegisterType("toggle_menu", EventToggleMenu)
	RegisterType("quit", EventQuit)
	RegisterType("theme_select", EventThemeSelect)
	RegisterType("difficulty_select", EventDifficultySelect)
	RegisterType("game_select", EventGameSelect)
	RegisterType("grab", EventCueGrab)
	RegisterType("drop", EventCueDrop)
	RegisterType("success", EventCueSuccess)
	RegisterType("level_up", EventCueLevelUp)
	RegisterType("game_over", EventCueGameOver)
	RegisterType("session_abort", EventSessionAbort)
}

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "unknown"
}

// String returns the registered name
func (t EventType) String() string {
	return GetEventName(t)
}
