package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVisualizers indicates a runner without anything to animate.
	ErrNoVisualizers = errors.New("sim: no visualizers")

	// ErrInvalidTicks indicates a non-positive tick budget.
	ErrInvalidTicks = errors.New("sim: ticks must be positive")
)

// RunError wraps a run failure with the frame it happened on.
type RunError struct {
	Frame   uint64
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *RunError) Unwrap() error { return e.Wrapped }
