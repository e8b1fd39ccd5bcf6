// Package session tracks in-progress test attempts inside a user session.
package session

import (
	"fmt"
	"time"

	"github.com/quizdesk/quizdesk/internal/apperror"
)

// Store is the per-user session as seen by the tracker. It is satisfied by
// sessions.Session from gin-contrib/sessions.
type Store interface {
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Delete(key interface{})
	Save() error
}

const keyPrefix = "attempt:"

// Tracker records when an attempt at a test was started. An attempt must be
// active for its questions to be fetched or its answers submitted.
type Tracker struct {
	now func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// NewTrackerWithClock is used by tests that need to control time.
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

func attemptKey(testID string) string {
	return keyPrefix + testID
}

// Start records now as the start of an attempt, replacing any earlier one.
func (t *Tracker) Start(s Store, testID string) (time.Time, error) {
	started := t.now()
	s.Set(attemptKey(testID), started.UnixMilli())
	if err := s.Save(); err != nil {
		return time.Time{}, fmt.Errorf("saving attempt start for test %s: %w", testID, err)
	}
	return started, nil
}

// Active returns the start time of the attempt at testID, if any.
func (t *Tracker) Active(s Store, testID string) (time.Time, bool) {
	switch v := s.Get(attemptKey(testID)).(type) {
	case int64:
		return time.UnixMilli(v), true
	case int:
		return time.UnixMilli(int64(v)), true
	case float64:
		return time.UnixMilli(int64(v)), true
	default:
		return time.Time{}, false
	}
}

// Require is Active that fails with apperror.ErrAttemptNotStarted.
func (t *Tracker) Require(s Store, testID string) (time.Time, error) {
	started, ok := t.Active(s, testID)
	if !ok {
		return time.Time{}, fmt.Errorf("test %s: %w", testID, apperror.ErrAttemptNotStarted)
	}
	return started, nil
}

// End forgets the attempt. Call it once per successful submission or reset.
func (t *Tracker) End(s Store, testID string) error {
	s.Delete(attemptKey(testID))
	if err := s.Save(); err != nil {
		return fmt.Errorf("clearing attempt for test %s: %w", testID, err)
	}
	return nil
}
