// Package apperror holds the error kinds shared by services and controllers.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers missing tests, settings, questions, results and answers.
	ErrNotFound = errors.New("not found")

	// ErrAttemptNotStarted and ErrTimeExpired are client state errors:
	// the test-taker must restart the attempt.
	ErrAttemptNotStarted = errors.New("attempt not started or expired")
	ErrTimeExpired       = errors.New("time limit for the attempt has expired")

	ErrValidation      = errors.New("validation failed")
	ErrMixedResults    = fmt.Errorf("%w: verdicts reference answers of different results", ErrValidation)
	ErrAlreadyReviewed = fmt.Errorf("%w: answer is not awaiting review", ErrValidation)
)

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsClientState reports whether err means the attempt has to be restarted.
func IsClientState(err error) bool {
	return errors.Is(err, ErrAttemptNotStarted) || errors.Is(err, ErrTimeExpired)
}
