package marbles

import "fmt"

// Filter keeps the events of a timeline whose value satisfies a predicate.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Filter[T comparable] struct {
	name      string
	label     string
	predicate func(T) bool
}

// NewFilter creates an operator that drops events failing the predicate.
// Event times and the termination are kept as they are.
//
// The predicate should be pure and deterministic: hosts re-run operators
// on every edit and expect the same output for the same input.
//
// Example:
//
//	even := marbles.NewFilter(func(n int) bool { return n%2 == 0 }).WithLabel("even")
//	out := even.Apply(marbles.Unary[int]{Source: source})
//	fmt.Println(even.Expression()) // filter(even)
func NewFilter[T comparable](predicate func(T) bool) *Filter[T] {
	return &Filter[T]{
		name:      "filter",
		label:     "predicate",
		predicate: predicate,
	}
}

// WithLabel sets how the predicate is shown in the expression.
// If not set, defaults to "predicate".
func (f *Filter[T]) WithLabel(label string) *Filter[T] {
	f.label = label
	return f
}

func (f *Filter[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](f.Expression(), inputs)
}

func (f *Filter[T]) Apply(p Unary[T]) Timeline[T] {
	kept := make([]Event[T], 0, len(p.Source.events))
	for _, e := range p.Source.events {
		if f.predicate(e.Value) {
			kept = append(kept, e)
		}
	}
	return Timeline[T]{events: kept, termination: p.Source.termination}
}

func (f *Filter[T]) Expression() string {
	return fmt.Sprintf("%s(%s)", f.name, f.label)
}

func (*Filter[T]) DocURL() string {
	return DocURLPrefix + "filter.html"
}
