package events

import "sync"

// Bus is a minimal in-process publish/subscribe channel. It stands in for
// the browser-level custom event channel that popup buttons use to call
// back into the map engine: subscribers register for a named topic and
// must unsubscribe when their owner is torn down.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]func(payload string)
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[int]func(payload string)),
	}
}

// Subscribe registers fn for topic and returns an unsubscribe function.
// Unsubscribing twice is harmless.
func (b *Bus) Subscribe(topic string, fn func(payload string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(payload string))
	}

	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.subs[topic], id)
	}
}

// Publish delivers payload to every subscriber of topic synchronously.
func (b *Bus) Publish(topic string, payload string) {
	b.mu.RLock()
	handlers := make([]func(string), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(payload)
	}
}
