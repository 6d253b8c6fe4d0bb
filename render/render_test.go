package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/engine"
	"github.com/lixenwraith/gesture-arcade/snake"
	"github.com/lixenwraith/gesture-arcade/status"
	"github.com/lixenwraith/gesture-arcade/tower"
	"github.com/lixenwraith/gesture-arcade/vision"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range h {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func snakeView() snake.View {
	return snake.View{
		Cells:  []vmath.Point{{X: 640, Y: 360}, {X: 620, Y: 360}, {X: 600, Y: 360}},
		Food:   []vmath.Point{{X: 100, Y: 100}},
		Theme:  snake.Themes[0],
		Score:  30,
		Level:  1,
		Speed:  10,
		Width:  1280,
		Height: 720,
		Cell:   20,
	}
}

func snakeSnapshot(mode engine.ModeState) *engine.Snapshot {
	return &engine.Snapshot{
		Game:      config.GameSnake,
		Mode:      mode,
		Session:   config.DefaultSession(),
		View:      snakeView(),
		Score:     30,
		Level:     1,
		HighScore: 50,
		Elapsed:   83 * time.Second,
	}
}

func TestRenderSnakePlaying(t *testing.T) {
	screen := newTestScreen(t, 128, 74)
	NewTerminal(screen, nil).Render(snakeSnapshot(engine.ModePlaying))

	hud := rowText(screen, 0)
	for _, want := range []string{"SNAKE", "score 30", "high 50", "speed 10", "01:23", "no hand"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}

	// 1280x720 world on a 128x72 play area: 10px per column and row, play area starts at row 1
	if r, _, _, _ := screen.GetContent(64, 37); r != '▓' {
		t.Errorf("Expected head at (64,37), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(62, 37); r != '█' {
		t.Errorf("Expected body at (62,37), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(10, 11); r != '●' {
		t.Errorf("Expected food at (10,11), got %q", r)
	}
}

func TestRenderSnakeFade(t *testing.T) {
	screen := newTestScreen(t, 128, 74)
	NewTerminal(screen, nil).Render(snakeSnapshot(engine.ModePlaying))

	_, _, head, _ := screen.GetContent(64, 37)
	_, _, tail, _ := screen.GetContent(60, 37)
	hfg, _, _ := head.Decompose()
	tfg, _, _ := tail.Decompose()
	hr, hg, hb := hfg.RGB()
	tr, tg, tb := tfg.RGB()
	if hr+hg+hb <= tr+tg+tb {
		t.Errorf("Expected head brighter than tail, got %d,%d,%d vs %d,%d,%d", hr, hg, hb, tr, tg, tb)
	}
}

func TestRenderMenu(t *testing.T) {
	screen := newTestScreen(t, 128, 74)
	snap := snakeSnapshot(engine.ModeMenu)
	NewTerminal(screen, nil).Render(snap)

	text := screenText(screen)
	for _, want := range []string{"GESTURE ARCADE", "Neon", "normal", "enter  start"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected menu to contain %q", want)
		}
	}
	if strings.Contains(text, "resume") {
		t.Error("Expected no resume line without a paused session")
	}

	snap.Paused = true
	NewTerminal(screen, nil).Render(snap)
	if !strings.Contains(screenText(screen), "resume") {
		t.Error("Expected resume line for a paused session")
	}
}

func TestRenderMenuAfterCaptureLoss(t *testing.T) {
	screen := newTestScreen(t, 128, 74)
	snap := snakeSnapshot(engine.ModeMenu)
	snap.Outcome = "capture lost: feed closed"
	NewTerminal(screen, nil).Render(snap)

	text := screenText(screen)
	for _, want := range []string{"capture lost: feed closed", "enter  start"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected menu to contain %q", want)
		}
	}
	if strings.Contains(text, "resume") {
		t.Error("Expected no resume line after an aborted session")
	}
}

func TestRenderGameOver(t *testing.T) {
	screen := newTestScreen(t, 128, 74)
	snap := snakeSnapshot(engine.ModeGameOver)
	snap.Outcome = "snake hit itself"
	NewTerminal(screen, nil).Render(snap)

	text := screenText(screen)
	for _, want := range []string{"GAME OVER", "score  30", "high   50", "snake hit itself", "r  restart"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected game over screen to contain %q", want)
		}
	}
}

func TestRenderTower(t *testing.T) {
	screen := newTestScreen(t, 128, 98)
	live := tower.NewBlock(100, 100, 80, 30, core.RGB{R: 255})
	settled := tower.NewBlock(472, 354, 80, 30, core.RGB{G: 255})

	snap := &engine.Snapshot{
		Game: config.GameTower,
		Mode: engine.ModePlaying,
		View: tower.View{
			Live:      live,
			Settled:   []tower.Block{settled},
			Ghost:     tower.NewBlock(472, 324, 80, 30, live.Color),
			ZoneX:     472,
			TopHeight: 354,
			Base:      384,
			Ceiling:   184,
			Theme:     tower.Themes[1],
			Attempts:  2,
			Width:     1024,
			Height:    768,
		},
	}
	NewTerminal(screen, nil).Render(snap)

	if hud := rowText(screen, 0); !strings.Contains(hud, "TOWER") || !strings.Contains(hud, "attempts 2") {
		t.Errorf("Expected tower HUD, got %q", hud)
	}

	// 1024x768 world on a 128x96 play area: 8px per cell, play area starts at row 1
	if r, _, _, _ := screen.GetContent(13, 13); r != '█' {
		t.Errorf("Expected live block at (13,13), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(60, 45); r != '█' {
		t.Errorf("Expected settled block at (60,45), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(60, 41); r != '░' {
		t.Errorf("Expected ghost at (60,41), got %q", r)
	}
	if !strings.Contains(rowText(screen, 24), "┄") {
		t.Error("Expected ceiling line on row 24")
	}
}

func TestRenderDebugFooter(t *testing.T) {
	screen := newTestScreen(t, 128, 74)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyTicks).Store(3)

	term := NewTerminal(screen, reg)
	term.Render(snakeSnapshot(engine.ModePlaying))
	if strings.Contains(rowText(screen, 73), "engine.ticks") {
		t.Error("Expected no metrics without debug")
	}

	term.Debug = true
	term.Render(snakeSnapshot(engine.ModePlaying))
	if !strings.Contains(rowText(screen, 73), "engine.ticks=3") {
		t.Errorf("Expected metrics footer, got %q", rowText(screen, 73))
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	NewTerminal(screen, nil).Render(snakeSnapshot(engine.ModePlaying))
	if !strings.HasPrefix(rowText(screen, 0), "terminal") {
		t.Errorf("Expected size warning, got %q", rowText(screen, 0))
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61*time.Second + 900*time.Millisecond, "01:01"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("Expected %s, got %s", tt.want, got)
		}
	}
}

func TestRenderCursorOnMouseCell(t *testing.T) {
	const w, h = 120, 40
	screen := newTestScreen(t, w, h)
	pointer := vision.NewPointer()
	pointer.Open(context.Background())
	sampler := vision.NewSampler(pointer, nil, nil)

	cells := []struct{ x, y int }{{5, 1}, {60, 20}, {61, 21}, {119, 38}}
	for _, c := range cells {
		pointer.HandleMouse(tcell.NewEventMouse(c.x, c.y, tcell.ButtonNone, tcell.ModNone), w, h)
		sig, err := sampler.Sample()
		if err != nil || !sig.Present {
			t.Fatalf("Expected hand at (%d,%d), got %+v %v", c.x, c.y, sig, err)
		}

		snap := &engine.Snapshot{
			Game:   config.GameTower,
			Mode:   engine.ModePlaying,
			View:   tower.View{Over: true, Theme: tower.Themes[0], Width: 1024, Height: 768},
			Signal: sig,
		}
		NewTerminal(screen, nil).Render(snap)

		if r, _, _, _ := screen.GetContent(c.x, c.y); r != '+' {
			t.Errorf("Expected cursor under the mouse at (%d,%d), got %q", c.x, c.y, r)
		}
	}
}
