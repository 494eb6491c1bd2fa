package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by every *IndexError.
	ErrOutOfRange   = errors.New("index out of range")
	ErrInvalidRange = errors.New("min is greater than max")
	ErrInvalidCount = errors.New("negative count")
)

// IndexError reports an index that falls outside the valid logical
// range of the operation that received it.
type IndexError struct {
	Op    string
	Index int
	Bound int // exclusive
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: %s: index %d out of range [0:%d)", e.Op, e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// SyntaxError is returned by ReadInts when a token is not an integer.
type SyntaxError struct {
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("vector: invalid token %q: %v", e.Token, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
