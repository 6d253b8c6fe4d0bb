package events

import (
	"sync/atomic"

	"github.com/lixenwraith/gesture-arcade/parameter"
)

// EventQueue is a fixed ring of GameEvents with many writers and one reader
//
// The arcade keeps two of them:
//   - commands: written by the input.Poller goroutine, drained by Arcade.Tick
//   - cues: written by snake.Game and tower.Game during Step, drained by the cue Router
//
// A full ring drops its oldest entries so a stalled tick never blocks the poller
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool // Set once the slot's write is visible
	read  atomic.Uint64
	write atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func slot(i uint64) uint64 { return i & parameter.EventBufferMask }

// Push claims the next write index and publishes the event into its slot
func (eq *EventQueue) Push(event GameEvent) {
	for {
		w := eq.write.Load()
		if !eq.write.CompareAndSwap(w, w+1) {
			continue
		}
		i := slot(w)
		eq.slots[i] = event
		eq.ready[i].Store(true)

		// Overwrote an unread slot: move the reader past it
		if r := eq.read.Load(); w+1-r > parameter.EventQueueSize {
			eq.read.CompareAndSwap(r, w+1-parameter.EventQueueSize)
		}
		return
	}
}

// Consume drains published events oldest first; only the tick goroutine may call it
// A slot claimed but not yet written ends the batch and is picked up next tick
func (eq *EventQueue) Consume() []GameEvent {
	for {
		r, w := eq.read.Load(), eq.write.Load()
		if r == w {
			return nil
		}
		n := w - r
		if n > parameter.EventQueueSize {
			n = parameter.EventQueueSize
			r = w - n
		}

		batch := make([]GameEvent, 0, n)
		for k := uint64(0); k < n; k++ {
			i := slot(r + k)
			if !eq.ready[i].Load() {
				break
			}
			batch = append(batch, eq.slots[i])
			eq.ready[i].Store(false)
		}

		if eq.read.CompareAndSwap(r, r+uint64(len(batch))) {
			if len(batch) == 0 {
				return nil
			}
			return batch
		}
	}
}

// Len is the number of unread events, at most the ring size
func (eq *EventQueue) Len() int {
	return int(min(eq.write.Load()-eq.read.Load(), uint64(parameter.EventQueueSize)))
}
