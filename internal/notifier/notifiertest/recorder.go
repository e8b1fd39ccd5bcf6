// Package notifiertest provides an in-memory publisher for tests.
package notifiertest

import (
	"sync"

	"github.com/quizdesk/quizdesk/internal/notifier"
)

// Recorder keeps emitted events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []notifier.Event
}

func (r *Recorder) Emit(event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notifier.Event{Name: event, Payload: payload})
}

func (r *Recorder) Events() []notifier.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notifier.Event, len(r.events))
	copy(out, r.events)
	return out
}
