package validation

import "strings"

// Error aggregates every violated constraint of one input.
type Error struct {
	Messages []string
}

// NewError returns an Error carrying msgs.
func NewError(msgs ...string) *Error {
	return &Error{Messages: msgs}
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Add appends a message.
func (e *Error) Add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// OrNil returns nil when no message was collected, so callers can write
// `return verr.OrNil()` without producing a non-nil empty error.
func (e *Error) OrNil() error {
	if e == nil || len(e.Messages) == 0 {
		return nil
	}
	return e
}
