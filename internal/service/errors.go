package service

import (
	"errors"
	"fmt"

	"github.com/quizdesk/quizdesk/internal/apperror"
	"gorm.io/gorm"
)

// notFoundOr turns gorm.ErrRecordNotFound into apperror.ErrNotFound and
// wraps anything else with the subject.
func notFoundOr(err error, format string, args ...any) error {
	subject := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("%s", subject)
	}
	return fmt.Errorf("loading %s: %w", subject, err)
}
