package model

import (
	"errors"
	"fmt"
)

// Error kinds of a single menu operation. The user sees one generic line for
// ErrTransport and ErrMapping; the kinds stay apart for logs and tests.
var (
	// ErrInvalidZip marks input that is not five ASCII digits.
	ErrInvalidZip = errors.New("invalid zip code")
	// ErrTransport marks network failures and non-2xx answers.
	ErrTransport = errors.New("weather api request failed")
	// ErrMapping marks a payload that does not have the expected shape.
	ErrMapping = errors.New("unexpected weather api response")
)

// MissingField reports an absent required field of a response.
func MissingField(field string) error {
	return fmt.Errorf("%w: missing field %q", ErrMapping, field)
}

// EmptyList reports a response list that must hold at least one element.
func EmptyList(field string) error {
	return fmt.Errorf("%w: empty list %q", ErrMapping, field)
}

// ErrorKind names the kind of err for structured logs.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidZip):
		return "input"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrMapping):
		return "mapping"
	default:
		return "unknown"
	}
}
