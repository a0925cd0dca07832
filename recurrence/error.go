package recurrence

import (
	"errors"
	"fmt"

	"github.com/reugn/go-calendar/calendar"
)

// Errors
var (
	// ErrTriggerExpired is returned when a trigger has no further fire time.
	ErrTriggerExpired = errors.New("trigger expired")
	// ErrCronParse is returned when a cron expression cannot be parsed.
	ErrCronParse = errors.New("parse cron expression")
	// ErrKeyExists is returned when a timeline already holds the key.
	ErrKeyExists = errors.New("key already exists")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to calendar.ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", calendar.ErrIllegalArgument, message)
}

// cronParseError returns a cron parse error with a custom error message,
// which unwraps to ErrCronParse.
func cronParseError(message string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrCronParse, message, cause)
}

// expiredError returns a trigger expired error for the trigger description,
// which unwraps to ErrTriggerExpired.
func expiredError(description string) error {
	return fmt.Errorf("%w: %s", ErrTriggerExpired, description)
}
