package buffer

import (
	"errors"
	"fmt"
)

// Errors carried by CorruptionError.
var (
	ErrInvalidCodepoint = errors.New("invalid codepoint")
	ErrMalformedUTF8    = errors.New("malformed utf-8")
)

// CorruptionError describes a buffer operation that met malformed content.
// It is raised with panic; it is never returned.
type CorruptionError struct {
	Op     string // Operation name (e.g., "append", "last")
	Offset int    // Byte offset where the problem was found, or -1
	Err    error
}

func (e *CorruptionError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("buffer %s: %v at byte %d", e.Op, e.Err, e.Offset)
	}
	return fmt.Sprintf("buffer %s: %v", e.Op, e.Err)
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}

func corrupt(op string, offset int, err error) {
	panic(&CorruptionError{Op: op, Offset: offset, Err: err})
}
