package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *OutOfRangeError.
	ErrOutOfRange = errors.New("line out of range")

	// ErrMalformedLineNumber is returned when a line number prompt does not
	// hold an integer.
	ErrMalformedLineNumber = errors.New("malformed line number")
)

// OutOfRangeError reports a GoToLine request outside [1, LineCount()].
type OutOfRangeError struct {
	Line int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("line %d is out of range", e.Line)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
