// Package input turns terminal events into arcade commands and pointer motion
package input

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/events"
)

// MouseHandler receives mouse motion with the screen size it was measured against
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse, width, height int)
}

// Poller reads the blocking tcell event stream on its own goroutine
// Commands go to the sink; the simulation goroutine drains them once per tick
type Poller struct {
	screen tcell.Screen
	table  *KeyTable
	sink   events.Sink
	mouse  MouseHandler // nil ignores the mouse

	// OnResize runs on the poller goroutine after the screen was resynced
	OnResize func(width, height int)

	mu      sync.Mutex
	started bool
	running bool
	stopped atomic.Bool
	doneCh  chan struct{}
}

// NewPoller creates a poller; mouse may be nil
func NewPoller(screen tcell.Screen, table *KeyTable, sink events.Sink, mouse MouseHandler) *Poller {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Poller{
		screen: screen,
		table:  table,
		sink:   sink,
		mouse:  mouse,
		doneCh: make(chan struct{}),
	}
}

// Start launches the poll loop once; later calls are no-ops
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	p.running = true
	core.Go(p.loop)
}

func (p *Poller) loop() {
	defer close(p.doneCh)
	for {
		ev := p.screen.PollEvent()
		if ev == nil || p.stopped.Load() {
			return
		}
		p.handle(ev)
	}
}

// handle processes one event
func (p *Poller) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := p.table.Lookup(ev)
		if !ok {
			return
		}
		cmd := entry.Event()
		cmd.Timestamp = ev.When()
		p.sink.Push(cmd)

	case *tcell.EventMouse:
		if p.mouse != nil {
			w, h := p.screen.Size()
			p.mouse.HandleMouse(ev, w, h)
		}

	case *tcell.EventResize:
		p.screen.Sync()
		if p.OnResize != nil {
			w, h := ev.Size()
			p.OnResize(w, h)
		}
	}
}

// Stop unblocks PollEvent and waits for the loop to exit
// Must be called before screen.Fini
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	p.stopped.Store(true)
	if err := p.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		log.Printf("input: post interrupt: %v", err)
	}

	select {
	case <-p.doneCh:
	case <-time.After(time.Second):
		log.Printf("input: poller did not stop")
	}
}
