package frame

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("frame: out of bounds")
	ErrInvalidSize = errors.New("frame: invalid buffer size")
	ErrShortBuffer = errors.New("frame: destination buffer too small")
)

// OutOfBoundsError describes a rectangle that does not fit in the buffer.
type OutOfBoundsError struct {
	X, Y, Width, Height int
	BufferW, BufferH    int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"frame: rectangle (%d, %d) %dx%d outside of %dx%d buffer",
		e.X, e.Y, e.Width, e.Height, e.BufferW, e.BufferH,
	)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
