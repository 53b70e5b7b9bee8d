package marbles

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrArity reports an input count the operator does not accept.
	ErrArity = errors.New("wrong number of inputs")

	// ErrInputType reports an input whose shape or element type the
	// operator does not accept.
	ErrInputType = errors.New("wrong input type")

	// ErrOutOfRange reports a time outside [0, TimelineDuration].
	ErrOutOfRange = errors.New("time out of range")

	// ErrAfterTermination reports an event later than its timeline's
	// termination.
	ErrAfterTermination = errors.New("event after termination")
)

// ValidationError explains why an operator cannot be applied to a list of
// inputs. It is an expected outcome: hosts skip the operator.
type ValidationError struct {
	// Err is ErrArity or ErrInputType.
	Err error

	// Expression identifies the rejecting operator.
	Expression string

	// Want describes the accepted arity, e.g. "0", "1" or "any".
	Want string

	// Got is the number of inputs received.
	Got int

	// Index is the offending input for ErrInputType, -1 otherwise.
	Index int
}

func (ve *ValidationError) Error() string {
	if ve.Index >= 0 {
		return fmt.Sprintf("%s: %v at input %d", ve.Expression, ve.Err, ve.Index)
	}
	return fmt.Sprintf("%s: %v (want %s, got %d)", ve.Expression, ve.Err, ve.Want, ve.Got)
}

// Unwrap returns the underlying sentinel.
func (ve *ValidationError) Unwrap() error {
	return ve.Err
}

// TimelineError reports a timeline that violates the model invariants.
type TimelineError struct {
	Err error

	// Index is the offending event, or -1 when the termination is at fault.
	Index int

	Time float64
}

func (te *TimelineError) Error() string {
	if te.Index < 0 {
		return fmt.Sprintf("termination at %s: %v", formatTime(te.Time), te.Err)
	}
	return fmt.Sprintf("event %d at %s: %v", te.Index, formatTime(te.Time), te.Err)
}

// Unwrap returns the underlying sentinel.
func (te *TimelineError) Unwrap() error {
	return te.Err
}

// ErrNoInput reports a sandbox edit addressing an input that does not exist.
var ErrNoInput = errors.New("no such input")

// IsValidation reports whether err means an operator does not apply to
// its inputs, as opposed to a failure of the host.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
