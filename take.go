package marbles

import "fmt"

// Take limits a timeline to its first n events.
type Take[T comparable] struct {
	name  string
	count int
}

// NewTake creates an operator that keeps the first count events in time
// order. Once the count-th event is emitted the output completes at that
// event's time, so a later source termination is never observed. A source
// with fewer events keeps its own termination. take(0) completes at once.
//
// Example:
//
//	// [1@0 2@3 3@4] error(6) -> [1@0 2@3] complete(3)
//	take := marbles.NewTake[int](2)
func NewTake[T comparable](count int) *Take[T] {
	return &Take[T]{
		count: max(count, 0),
		name:  "take",
	}
}

func (t *Take[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](t.Expression(), inputs)
}

func (t *Take[T]) Apply(p Unary[T]) Timeline[T] {
	if t.count == 0 {
		return Timeline[T]{termination: CompleteAt(0)}
	}
	events := p.Source.events
	if len(events) < t.count {
		return Timeline[T]{events: copyEvents(events), termination: p.Source.termination}
	}
	taken := copyEvents(events[:t.count])
	return Timeline[T]{
		events:      taken,
		termination: CompleteAt(taken[len(taken)-1].Time),
	}
}

func (t *Take[T]) Expression() string {
	return fmt.Sprintf("%s(%d)", t.name, t.count)
}

func (*Take[T]) DocURL() string {
	return DocURLPrefix + "take.html"
}
