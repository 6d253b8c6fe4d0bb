package events

// Handler consumes cues for one game context
// audio.SoundManager plays them; the arcade's outcome logger records level ups and game overs
type Handler[T any] interface {
	// HandleEvent runs on the tick goroutine and must not block
	HandleEvent(ctx T, event GameEvent)

	// EventTypes lists the cues the handler wants
	EventTypes() []EventType
}

// Router fans the cue queue out to handlers once per tick
// The arcade instantiates it with T = game name, so handlers know which game spoke
// Handlers for the same type run in registration order
type Router[T any] struct {
	byType map[EventType][]Handler[T]
	queue  *EventQueue
}

// NewRouter reads from queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{byType: make(map[EventType][]Handler[T]), queue: queue}
}

// Register subscribes handler to every type it declares
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.byType[t] = append(r.byType[t], handler)
	}
}

// DispatchAll drains the queue, delivering cues in push order
func (r *Router[T]) DispatchAll(ctx T) {
	for _, ev := range r.queue.Consume() {
		r.Dispatch(ctx, ev)
	}
}

func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.byType[t]) > 0
}

func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.byType[t])
}

// Dispatch delivers one event directly and reports how many handlers saw it
func (r *Router[T]) Dispatch(ctx T, ev GameEvent) int {
	hs := r.byType[ev.Type]
	for _, h := range hs {
		h.HandleEvent(ctx, ev)
	}
	return len(hs)
}
