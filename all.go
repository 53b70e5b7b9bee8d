package marbles

import "fmt"

// All tells whether every value of a timeline satisfies a predicate.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type All[T comparable] struct {
	name      string
	label     string
	predicate func(T) bool
}

// NewAll creates an operator reducing a timeline to a boolean outcome.
//
// The first value failing the predicate decides at once: Success(t, false)
// at that event's time, ignoring later events and the termination. With no
// counterexample the termination decides: None gives None, Complete(t)
// gives Success(t, true) and Error(t) gives Error(t).
//
// Example:
//
//	positive := marbles.NewAll(func(n int) bool { return n > 0 }).WithLabel("positive")
//	single := positive.Apply(marbles.Unary[int]{Source: source})
//	if single.Result().IsSuccess() && !single.Result().Value() {
//		// found a non-positive value
//	}
func NewAll[T comparable](predicate func(T) bool) *All[T] {
	return &All[T]{
		name:      "all",
		label:     "predicate",
		predicate: predicate,
	}
}

// WithLabel sets how the predicate is shown in the expression.
func (a *All[T]) WithLabel(label string) *All[T] {
	a.label = label
	return a
}

func (a *All[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](a.Expression(), inputs)
}

func (a *All[T]) Apply(p Unary[T]) Single[bool] {
	for _, e := range p.Source.events {
		if !a.predicate(e.Value) {
			return NewSingle(NewSuccess(e.Time, false))
		}
	}
	return NewSingle(MatchTermination(p.Source.termination,
		NewPending[bool],
		func(time float64) Result[bool] { return NewSuccess(time, true) },
		NewFailure[bool],
	))
}

func (a *All[T]) Expression() string {
	return fmt.Sprintf("%s(%s)", a.name, a.label)
}

func (*All[T]) DocURL() string {
	return DocURLPrefix + "all.html"
}
