package vision

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/parameter"
	"github.com/lixenwraith/gesture-arcade/vmath"
)

// Pointer is a synthetic hand driven by the terminal mouse
// The wrist sits at the screen centre and the fingertip follows the mouse, so
// steering is relative to the centre and the cursor maps to the mouse position
type Pointer struct {
	mu      sync.Mutex
	tip     vmath.Vec2
	present bool
	open    bool
	seq     uint64
}

// NewPointer creates a closed pointer with no hand
func NewPointer() *Pointer {
	return &Pointer{}
}

// Open starts accepting reads
func (p *Pointer) Open(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = true
	return nil
}

// HandleMouse moves the fingertip to the event's cell centre within the play area of a width×height screen
// The play area is the rows between the HUD and the footer, the same rows the renderer maps the world onto
// A mouse over the HUD or footer lifts the hand
func (p *Pointer) HandleMouse(ev *tcell.EventMouse, width, height int) {
	rows := height - parameter.ScreenHUDRows - parameter.ScreenFooterRows
	if width <= 0 || rows <= 0 {
		return
	}
	x, y := ev.Position()
	y -= parameter.ScreenHUDRows
	p.mu.Lock()
	defer p.mu.Unlock()

	if x < 0 || y < 0 || x >= width || y >= rows {
		p.present = false
		return
	}
	p.tip = vmath.Vec2{
		X: (float64(x) + 0.5) / float64(width),
		Y: (float64(y) + 0.5) / float64(rows),
	}
	p.present = true
	p.seq++
}

// Lift removes the hand until the next mouse event
func (p *Pointer) Lift() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.present = false
}

// Read returns the current synthetic frame
func (p *Pointer) Read() (Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return Frame{}, ErrCaptureClosed
	}
	if !p.present {
		return Frame{Seq: p.seq}, nil
	}
	return Frame{
		Seq:       p.seq,
		Landmarks: skeleton(vmath.Vec2{X: 0.5, Y: 0.5}, p.tip),
	}, nil
}

// Close stops reads
func (p *Pointer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
	return nil
}
