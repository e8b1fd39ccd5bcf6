// Package notifier fans out result events to connected admin clients.
package notifier

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	EventNewResult      = "new-result"
	EventResultReviewed = "result-reviewed"
)

const defaultBuffer = 16

// Publisher is what services depend on. Emit must never block.
type Publisher interface {
	Emit(event string, payload any)
}

type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"payload"`
}

// Broker delivers every emitted event to all current subscribers. A
// subscriber whose buffer is full misses the event.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]chan Event
	nextID uint64
	buffer int
	closed bool
}

func NewBroker() *Broker {
	return NewBrokerWithBuffer(defaultBuffer)
}

func NewBrokerWithBuffer(buffer int) *Broker {
	if buffer < 1 {
		buffer = 1
	}
	return &Broker{subs: make(map[uint64]chan Event), buffer: buffer}
}

// Subscribe returns a channel of events and a function that detaches it.
// The channel is closed when the subscription is cancelled or the broker
// shuts down.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Broker) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *Broker) Emit(event string, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ev := Event{Name: event, Payload: payload}
	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			log.Warn().Uint64("subscriber", id).Str("event", event).Msg("Subscriber is slow, event dropped")
		}
	}
	log.Debug().Str("event", event).Int("subscribers", len(b.subs)).Msg("Event emitted")
}

func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close detaches every subscriber. Later Emits are no-ops.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	b.closed = true
}

// Discard drops every event.
type Discard struct{}

func (Discard) Emit(string, any) {}
