package marbles

import "fmt"

// ResultKind tags the three states of a single-valued outcome.
type ResultKind uint8

const (
	// ResultNone means the outcome is not determined yet.
	ResultNone ResultKind = iota
	// ResultSuccess carries a value produced at a time.
	ResultSuccess
	// ResultError means the outcome failed at a time.
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	default:
		return "none"
	}
}

// Result is the outcome of an operator reducing a timeline to at most one
// value: None, Success(time, value) or Error(time). The zero value is None.
// It is comparable, so results can be checked with ==.
type Result[T comparable] struct {
	value T
	time  float64
	kind  ResultKind
}

// NewPending returns an undetermined result. It mirrors a source that has
// not terminated.
func NewPending[T comparable]() Result[T] {
	return Result[T]{}
}

// NewSuccess returns a value produced at the given time.
func NewSuccess[T comparable](time float64, value T) Result[T] {
	return Result[T]{kind: ResultSuccess, time: time, value: value}
}

// NewFailure returns a failure at the given time.
func NewFailure[T comparable](time float64) Result[T] {
	return Result[T]{kind: ResultError, time: time}
}

// Kind returns the result state.
func (r Result[T]) Kind() ResultKind {
	return r.kind
}

// IsSuccess reports whether the result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.kind == ResultSuccess
}

// IsError reports whether the result failed.
func (r Result[T]) IsError() bool {
	return r.kind == ResultError
}

// Time returns the time of a Success or Error, false for None.
func (r Result[T]) Time() (float64, bool) {
	if r.kind == ResultNone {
		return 0, false
	}
	return r.time, true
}

// Value returns the successful value.
// Panics if called on a Result without a value - always check IsSuccess() first.
func (r Result[T]) Value() T {
	if r.kind != ResultSuccess {
		panic("called Value() on Result without a value")
	}
	return r.value
}

// ValueOr returns the successful value if present, otherwise returns the fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if r.kind != ResultSuccess {
		return fallback
	}
	return r.value
}

func (r Result[T]) String() string {
	switch r.kind {
	case ResultSuccess:
		return fmt.Sprintf("success(%s, %v)", formatTime(r.time), r.value)
	case ResultError:
		return fmt.Sprintf("error(%s)", formatTime(r.time))
	default:
		return "none"
	}
}

// MatchResult dispatches on the result state. Every state needs a handler.
func MatchResult[T comparable, R any](
	r Result[T],
	none func() R,
	success func(time float64, value T) R,
	failed func(time float64) R,
) R {
	switch r.kind {
	case ResultSuccess:
		return success(r.time, r.value)
	case ResultError:
		return failed(r.time)
	default:
		return none()
	}
}

// Single is the stream model of operators that reduce to one value.
type Single[T comparable] struct {
	result Result[T]
}

// NewSingle wraps a result.
func NewSingle[T comparable](result Result[T]) Single[T] {
	return Single[T]{result: result}
}

// Result returns the wrapped outcome.
func (s Single[T]) Result() Result[T] {
	return s.result
}

// Marbles implements Stream. A success is drawn as one marble.
func (s Single[T]) Marbles() []Marble {
	if s.result.kind != ResultSuccess {
		return nil
	}
	return []Marble{{Time: s.result.time, Value: s.result.value}}
}

// Terminal implements Stream. A success completes at its own time.
func (s Single[T]) Terminal() Termination {
	return MatchResult(s.result,
		None,
		func(time float64, _ T) Termination { return CompleteAt(time) },
		ErrorAt,
	)
}

func (s Single[T]) String() string {
	return s.result.String()
}
