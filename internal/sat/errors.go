package sat

import "fmt"

// InvariantViolation is panicked when an internal assertion about the
// watched-literal scheme or the assignment trail fails. These indicate a bug
// in the solver itself, never a property of the input formula, and are
// never recovered.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "sat: invariant violation: " + e.Msg
}

func invariantf(format string, args ...any) {
	panic(&InvariantViolation{Msg: fmt.Sprintf(format, args...)})
}
