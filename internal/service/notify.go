package service

import (
	"github.com/quizdesk/quizdesk/internal/notifier"
	"github.com/rs/zerolog/log"
)

// emit publishes after a commit. A failing publisher must not fail the
// request that already committed.
func emit(p notifier.Publisher, event string, payload any) {
	if p == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("event", event).Msg("Event publisher panicked, notification lost")
		}
	}()
	p.Emit(event, payload)
}
