package calendar

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrFieldRange is returned when a field value is outside of its legal range,
	// e.g. month 13 or day-of-month 32.
	ErrFieldRange = errors.New("field value out of range")

	// ErrInvalidDate is returned when a day is not valid for the given year and
	// month, e.g. February 30.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnsupportedField is returned when a field is not supported by the type.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrUnsupportedUnit is returned when a unit is not supported by the type.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrOverflow is returned when a computation exceeds the representable range.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrParse is returned when text cannot be parsed.
	ErrParse = errors.New("parse text")

	// ErrIllegalArgument is returned for inputs rejected by an operation, such as
	// a zero step for a date sequence.
	ErrIllegalArgument = errors.New("illegal argument")
)

// ParseError describes a failure to parse text. It unwraps to ErrParse and
// to the underlying cause, if any.
type ParseError struct {
	Text    string
	Index   int
	Message string
	Err     error
}

var _ error = (*ParseError)(nil)

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s %q at index %d", ErrParse, e.Message, e.Text, e.Index)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// fieldRangeError returns a range error for the given field and value,
// which unwraps to ErrFieldRange.
func fieldRangeError(field Field, value int64, r ValueRange) error {
	return fmt.Errorf("%w: invalid value for %s (valid values %s): %d",
		ErrFieldRange, field, r, value)
}

// invalidDateError returns an invalid composite date error with a custom
// error message, which unwraps to ErrInvalidDate.
func invalidDateError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDate, message)
}

// unsupportedFieldError returns an unsupported field error, which unwraps
// to ErrUnsupportedField.
func unsupportedFieldError(field Field) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedField, field)
}

// unsupportedUnitError returns an unsupported unit error, which unwraps
// to ErrUnsupportedUnit.
func unsupportedUnitError(unit Unit) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit)
}

// overflowError returns an arithmetic overflow error with a custom error
// message, which unwraps to ErrOverflow.
func overflowError(message string) error {
	return fmt.Errorf("%w: %s", ErrOverflow, message)
}

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// parseError returns a *ParseError for the given text and index.
func parseError(text string, index int, message string, cause error) error {
	return &ParseError{Text: text, Index: index, Message: message, Err: cause}
}
