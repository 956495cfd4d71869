package mazesolver

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate or passage falls outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidDimensions is returned for a grid with a non-positive side.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrOutOfMemory is returned when the grid or the open set cannot be sized
	// to the requested capacity.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrEmptyQueue is returned by PopMin on an empty open set. During a
	// search it is the signal that no path exists, not a failure.
	ErrEmptyQueue = errors.New("open set is empty")

	// ErrInvalidState reports a broken search invariant, such as a parent
	// chain that does not lead back to the end cell.
	ErrInvalidState = errors.New("invalid search state")

	// ErrMalformedInput matches every *MalformedInputError.
	ErrMalformedInput = errors.New("malformed maze input")
)

// MalformedInputError describes where maze text stopped making sense.
type MalformedInputError struct {
	Line     int // 1-based line of the maze text
	Read     int // bytes actually read for that line
	Expected int // bytes expected for that line
	Reason   string
}

func (e *MalformedInputError) Error() string {
	if e.Expected > 0 {
		return fmt.Sprintf("malformed maze input at line %d: %s (%d bytes of %d expected)",
			e.Line, e.Reason, e.Read, e.Expected)
	}
	return fmt.Sprintf("malformed maze input at line %d: %s", e.Line, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }
