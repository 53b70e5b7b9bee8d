package marbles

import "fmt"

// Skip discards the first n events of a timeline.
type Skip[T comparable] struct {
	name  string
	count int
}

// NewSkip creates an operator that removes the first count events in time
// order. The termination is carried through unchanged. Skipping more events
// than the timeline holds leaves it empty; a negative count skips nothing.
//
// Example:
//
//	// [1@0 2@1 3@4] complete(10) -> [3@4] complete(10)
//	skip := marbles.NewSkip[int](2)
//	out := skip.Apply(marbles.Unary[int]{Source: source})
func NewSkip[T comparable](count int) *Skip[T] {
	return &Skip[T]{
		count: max(count, 0),
		name:  "skip",
	}
}

func (s *Skip[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](s.Expression(), inputs)
}

func (s *Skip[T]) Apply(p Unary[T]) Timeline[T] {
	events := p.Source.events
	if s.count >= len(events) {
		return Timeline[T]{termination: p.Source.termination}
	}
	return Timeline[T]{
		events:      copyEvents(events[s.count:]),
		termination: p.Source.termination,
	}
}

func (s *Skip[T]) Expression() string {
	return fmt.Sprintf("%s(%d)", s.name, s.count)
}

func (*Skip[T]) DocURL() string {
	return DocURLPrefix + "skip.html"
}
