package marbles

import (
	"fmt"
	"strings"
)

// Throw is a source that fails at the start of the time axis.
type Throw[T comparable] struct {
	name string
}

// NewThrow creates a source producing Timeline(∅, Error(0)).
func NewThrow[T comparable]() *Throw[T] {
	return &Throw[T]{name: "throw"}
}

func (o *Throw[T]) Params(inputs []Stream) (Nullary, error) {
	return nullaryParams(o.Expression(), inputs)
}

func (*Throw[T]) Apply(Nullary) Timeline[T] {
	return Timeline[T]{termination: ErrorAt(0)}
}

func (o *Throw[T]) Expression() string {
	return o.name
}

func (*Throw[T]) DocURL() string {
	return DocURLPrefix + "empty-never-throw.html"
}

// Empty is a source that completes at the start of the time axis.
type Empty[T comparable] struct {
	name string
}

// NewEmpty creates a source producing Timeline(∅, Complete(0)).
func NewEmpty[T comparable]() *Empty[T] {
	return &Empty[T]{name: "empty"}
}

func (o *Empty[T]) Params(inputs []Stream) (Nullary, error) {
	return nullaryParams(o.Expression(), inputs)
}

func (*Empty[T]) Apply(Nullary) Timeline[T] {
	return Timeline[T]{termination: CompleteAt(0)}
}

func (o *Empty[T]) Expression() string {
	return o.name
}

func (*Empty[T]) DocURL() string {
	return DocURLPrefix + "empty-never-throw.html"
}

// Never is a source that neither emits nor terminates.
type Never[T comparable] struct {
	name string
}

// NewNever creates a source producing Timeline(∅, None).
func NewNever[T comparable]() *Never[T] {
	return &Never[T]{name: "never"}
}

func (o *Never[T]) Params(inputs []Stream) (Nullary, error) {
	return nullaryParams(o.Expression(), inputs)
}

func (*Never[T]) Apply(Nullary) Timeline[T] {
	return Timeline[T]{}
}

func (o *Never[T]) Expression() string {
	return o.name
}

func (*Never[T]) DocURL() string {
	return DocURLPrefix + "empty-never-throw.html"
}

// Just is a source emitting fixed values at time 0 and then completing.
type Just[T comparable] struct {
	name   string
	values []T
}

// NewJust creates a source emitting every value at time 0, in order, and
// completing at time 0. Repeated values collapse into one event.
func NewJust[T comparable](values ...T) *Just[T] {
	return &Just[T]{
		name:   "just",
		values: append([]T(nil), values...),
	}
}

func (o *Just[T]) Params(inputs []Stream) (Nullary, error) {
	return nullaryParams(o.Expression(), inputs)
}

func (o *Just[T]) Apply(Nullary) Timeline[T] {
	events := make([]Event[T], len(o.values))
	for i, v := range o.values {
		events[i] = Event[T]{Time: 0, Value: v}
	}
	return newTimeline(CompleteAt(0), events)
}

func (o *Just[T]) Expression() string {
	args := make([]string, len(o.values))
	for i, v := range o.values {
		args[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s(%s)", o.name, strings.Join(args, ", "))
}

func (*Just[T]) DocURL() string {
	return DocURLPrefix + "just.html"
}
