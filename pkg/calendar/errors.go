package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds is returned when an interval's start is not before its stop.
	ErrInvalidBounds = errors.New("interval start must be before stop")

	// ErrUnsupported is returned by operations collections deliberately do not offer.
	ErrUnsupported = errors.New("operation not supported")

	// ErrIndexOutOfRange is returned when a collection index is past either end.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownKind is returned for a kind name that names no granule.
	ErrUnknownKind = errors.New("unknown kind")
)

// InvalidMomentError reports calendar fields that do not form a valid civil timestamp.
type InvalidMomentError struct {
	Message string
}

func (e *InvalidMomentError) Error() string {
	return "invalid moment: " + e.Message
}

func invalidMoment(err error) error {
	return &InvalidMomentError{Message: err.Error()}
}

// ParseError reports input that is not one of the canonical string forms.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %q", e.Input)
	}
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
