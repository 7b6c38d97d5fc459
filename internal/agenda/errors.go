package agenda

import "errors"

var (
	// ErrOutOfRange indicates an index outside [0, len) of the current sequence.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidPostpone indicates a postpone value other than Yes or No.
	ErrInvalidPostpone = errors.New("invalid postpone value")

	// ErrClosed indicates a reorder requested after the store or its
	// Reorderer was closed.
	ErrClosed = errors.New("agenda closed")
)
