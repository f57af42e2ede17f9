package selector

import (
	"errors"
)

var (
	// ErrNoCandidates indicates the loop was started with nothing to choose from.
	ErrNoCandidates = errors.New("no candidates")
	// ErrOutOfRange indicates a numeric choice outside the displayed list.
	ErrOutOfRange = errors.New("invalid selection")
	// ErrNoMatch indicates a filter matched zero candidates.
	ErrNoMatch = errors.New("no match")
	// ErrInvalidToken indicates input that is neither a command, a number,
	// nor a usable filter.
	ErrInvalidToken = errors.New("invalid input")
	// ErrReadFault wraps an unexpected failure reading from the input source.
	ErrReadFault = errors.New("read failed")
	// ErrInputExhausted indicates end of input or an interrupt.
	ErrInputExhausted = errors.New("input closed")
)

// Diagnostic is one problem reported to the user while selecting.
type Diagnostic struct {
	Err     error
	Message string
}

func (d Diagnostic) Error() string {
	return d.Message
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
