package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/events"
)

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want events.EventType
		game string
		ok   bool
	}{
		{"space starts", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), events.EventStart, "", true},
		{"enter starts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), events.EventStart, "", true},
		{"r restarts", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), events.EventRestart, "", true},
		{"upper R restarts", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), events.EventRestart, "", true},
		{"escape toggles", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), events.EventToggleMenu, "", true},
		{"ctrl c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), events.EventQuit, "", true},
		{"ctrl q quits", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), events.EventQuit, "", true},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), events.EventQuit, "", true},
		{"t theme", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), events.EventThemeSelect, "", true},
		{"d difficulty", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), events.EventDifficultySelect, "", true},
		{"tab cycles game", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), events.EventGameSelect, "", true},
		{"2 selects tower", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), events.EventGameSelect, "tower", true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), events.EventNone, "", false},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), events.EventNone, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := kt.Lookup(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if e.Type != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, e.Type)
			}
			if e.Game != tt.game {
				t.Errorf("Expected game %q, got %q", tt.game, e.Game)
			}
		})
	}
}

func TestKeyEntryPayload(t *testing.T) {
	ev := KeyEntry{Type: events.EventGameSelect, Game: "snake"}.Event()
	p, ok := ev.Payload.(*events.GameSelectPayload)
	if !ok || p.Game != "snake" {
		t.Errorf("Expected snake payload, got %#v", ev.Payload)
	}

	if ev := (KeyEntry{Type: events.EventStart}).Event(); ev.Payload != nil {
		t.Errorf("Expected no payload, got %#v", ev.Payload)
	}
}

type mouseRecorder struct {
	x, y, w, h int
	calls      int
}

func (m *mouseRecorder) HandleMouse(ev *tcell.EventMouse, width, height int) {
	m.x, m.y = ev.Position()
	m.w, m.h = width, height
	m.calls++
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

func TestPollerHandle(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	q := events.NewEventQueue()
	mouse := &mouseRecorder{}
	p := NewPoller(screen, nil, q, mouse)

	resized := false
	p.OnResize = func(w, h int) { resized = w == 100 && h == 30 }

	p.handle(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone))
	p.handle(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	p.handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	p.handle(tcell.NewEventResize(100, 30))

	cmds := q.Consume()
	if len(cmds) != 1 || cmds[0].Type != events.EventThemeSelect {
		t.Fatalf("Expected one theme command, got %v", cmds)
	}
	if cmds[0].Timestamp.IsZero() {
		t.Error("Expected command timestamp")
	}
	if mouse.calls != 1 || mouse.x != 10 || mouse.y != 5 || mouse.w != 80 || mouse.h != 24 {
		t.Errorf("Expected mouse (10,5) on 80x24, got %+v", mouse)
	}
	if !resized {
		t.Error("Expected resize callback with 100x30")
	}
}

func TestPollerLoop(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	q := events.NewEventQueue()
	p := NewPoller(screen, nil, q, nil)
	p.Start()
	p.Start()

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var got []events.GameEvent
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		got = append(got, q.Consume()...)
		time.Sleep(5 * time.Millisecond)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(got))
	}
	if got[0].Type != events.EventStart || got[1].Type != events.EventQuit {
		t.Errorf("Expected start then quit, got %s then %s", got[0].Type, got[1].Type)
	}

	p.Stop()
	p.Stop()
	select {
	case <-p.doneCh:
	default:
		t.Error("Expected poll loop to exit after stop")
	}
}
