package marbles

import "fmt"

// Any tells whether some value of a timeline satisfies a predicate.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Any[T comparable] struct {
	name      string
	label     string
	predicate func(T) bool
}

// NewAny creates an operator that succeeds with true at the first value
// satisfying the predicate. Without a match: None gives None, Complete(t)
// gives Success(t, false) and Error(t) gives Error(t).
func NewAny[T comparable](predicate func(T) bool) *Any[T] {
	return &Any[T]{
		name:      "any",
		label:     "predicate",
		predicate: predicate,
	}
}

// WithLabel sets how the predicate is shown in the expression.
func (a *Any[T]) WithLabel(label string) *Any[T] {
	a.label = label
	return a
}

func (a *Any[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](a.Expression(), inputs)
}

func (a *Any[T]) Apply(p Unary[T]) Single[bool] {
	return NewSingle(exists(p.Source, a.predicate))
}

func (a *Any[T]) Expression() string {
	return fmt.Sprintf("%s(%s)", a.name, a.label)
}

func (*Any[T]) DocURL() string {
	return DocURLPrefix + "contains.html"
}

// exists is the search shared by any and contains.
func exists[T comparable](source Timeline[T], predicate func(T) bool) Result[bool] {
	for _, e := range source.events {
		if predicate(e.Value) {
			return NewSuccess(e.Time, true)
		}
	}
	return MatchTermination(source.termination,
		NewPending[bool],
		func(time float64) Result[bool] { return NewSuccess(time, false) },
		NewFailure[bool],
	)
}
