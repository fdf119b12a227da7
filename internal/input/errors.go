package input

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoPlanes is returned when a manager has no main planes.
	ErrNoPlanes = errors.New("no main planes")

	// ErrNoSignPlane is returned when a manager has no sign plane.
	ErrNoSignPlane = errors.New("no sign plane")

	// ErrDuplicatePlane is returned when a plane is registered twice.
	ErrDuplicatePlane = errors.New("duplicate plane")

	// ErrQuit is returned by a Poller when the user asks to exit.
	ErrQuit = errors.New("quit requested")
)

// SinkError wraps a failure returned by the Sink.
type SinkError struct {
	Op    string
	Plane string
	Err   error
}

// Error implements error.
func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s on plane %q: %v", e.Op, e.Plane, e.Err)
}

// Unwrap returns the sink's error.
func (e *SinkError) Unwrap() error {
	return e.Err
}
