package uuidkit

import "errors"

// ErrNilInput indicates that a required argument was absent: a nil queue, a
// nil discovery function, or the zero uuid.Nil where a concrete value is
// required.
var ErrNilInput = errors.New("uuidkit: required argument is absent")

// InvalidFormatError indicates that a string failed the strict structural
// validation for its claimed representation. The offending input is carried
// verbatim in the message.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return "Invalid UUID string: " + e.Input
}
