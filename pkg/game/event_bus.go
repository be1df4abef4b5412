package game

// Handler receives an event name and its payload.
type Handler func(event string, payload any)

// EventBus is a small synchronous publish/subscribe hub. It is injected
// where needed; there is no package-level instance.
type EventBus struct {
	handlers map[string][]*listener
}

type listener struct {
	fn      Handler
	once    bool
	removed bool
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[string][]*listener)}
}

// On registers fn for event.
func (b *EventBus) On(event string, fn Handler) *EventBus {
	b.handlers[event] = append(b.handlers[event], &listener{fn: fn})
	return b
}

// Once registers fn for the next emission of event only.
func (b *EventBus) Once(event string, fn Handler) *EventBus {
	b.handlers[event] = append(b.handlers[event], &listener{fn: fn, once: true})
	return b
}

// Off removes every handler of event.
func (b *EventBus) Off(event string) *EventBus {
	for _, l := range b.handlers[event] {
		l.removed = true
	}
	delete(b.handlers, event)
	return b
}

// Has reports whether event has at least one handler.
func (b *EventBus) Has(event string) bool {
	return len(b.handlers[event]) > 0
}

// Emit calls the handlers of event in registration order. Handlers added
// while emitting first see the next emission.
func (b *EventBus) Emit(event string, payload any) {
	current := b.handlers[event]
	if len(current) == 0 {
		return
	}
	snapshot := append([]*listener(nil), current...)

	for _, l := range snapshot {
		if l.removed {
			continue
		}
		if l.once {
			l.removed = true
			b.drop(event, l)
		}
		l.fn(event, payload)
	}
}

func (b *EventBus) drop(event string, target *listener) {
	list := b.handlers[event]
	for i, l := range list {
		if l == target {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(b.handlers, event)
		return
	}
	b.handlers[event] = list
}
