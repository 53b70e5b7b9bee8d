package marbles

import "fmt"

// TerminationKind tags the three terminal states of a timeline.
type TerminationKind uint8

const (
	// TerminationNone means the timeline has not terminated.
	TerminationNone TerminationKind = iota
	// TerminationComplete means the timeline completed normally.
	TerminationComplete
	// TerminationError means the timeline failed.
	TerminationError
)

func (k TerminationKind) String() string {
	switch k {
	case TerminationComplete:
		return "complete"
	case TerminationError:
		return "error"
	default:
		return "none"
	}
}

// Termination is the terminal state of a timeline: None, Complete(time)
// or Error(time). The zero value is None.
//
// Termination is a comparable value type; use MatchTermination to handle
// every state exhaustively.
type Termination struct {
	kind TerminationKind
	time float64
}

// None returns the termination of a timeline that never ends.
func None() Termination {
	return Termination{}
}

// CompleteAt returns a normal completion at the given time.
func CompleteAt(time float64) Termination {
	return Termination{kind: TerminationComplete, time: time}
}

// ErrorAt returns a failure at the given time.
func ErrorAt(time float64) Termination {
	return Termination{kind: TerminationError, time: time}
}

// Kind returns the termination state.
func (t Termination) Kind() TerminationKind {
	return t.kind
}

// Time returns the terminal time and true, or false for None.
func (t Termination) Time() (float64, bool) {
	if t.kind == TerminationNone {
		return 0, false
	}
	return t.time, true
}

// IsDefinite reports whether the termination carries a time.
func (t Termination) IsDefinite() bool {
	return t.kind != TerminationNone
}

// IsError reports whether the termination is an Error.
func (t Termination) IsError() bool {
	return t.kind == TerminationError
}

// IsComplete reports whether the termination is a Complete.
func (t Termination) IsComplete() bool {
	return t.kind == TerminationComplete
}

// At returns the same kind of termination moved to another time.
// None is returned unchanged.
func (t Termination) At(time float64) Termination {
	if t.kind == TerminationNone {
		return t
	}
	return Termination{kind: t.kind, time: time}
}

// Before reports whether t happens strictly before other.
// None never happens, so it is never before anything.
func (t Termination) Before(other Termination) bool {
	if t.kind == TerminationNone {
		return false
	}
	if other.kind == TerminationNone {
		return true
	}
	return t.time < other.time
}

func (t Termination) String() string {
	if t.kind == TerminationNone {
		return "none"
	}
	return fmt.Sprintf("%s(%s)", t.kind, formatTime(t.time))
}

// MatchTermination dispatches on the termination state. Every state needs
// a handler, so callers cannot forget one.
func MatchTermination[R any](
	t Termination,
	none func() R,
	complete func(time float64) R,
	failed func(time float64) R,
) R {
	switch t.kind {
	case TerminationComplete:
		return complete(t.time)
	case TerminationError:
		return failed(t.time)
	default:
		return none()
	}
}

// earliest returns the first definite termination in time, keeping the
// earlier argument on a tie. None loses against any definite termination.
func earliest(a, b Termination) Termination {
	if b.Before(a) {
		return b
	}
	return a
}
