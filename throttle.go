package marbles

import "fmt"

// Throttle limits how often values pass through.
type Throttle[T comparable] struct {
	name     string
	duration float64
}

// NewThrottle creates an operator that lets an event through, then ignores
// every event arriving less than duration after it. An event exactly
// duration later passes. The termination is kept.
//
// Example:
//
//	// [1@0 2@1 3@2 4@5] complete(10) with duration 2 -> [1@0 3@2 4@5] complete(10)
//	throttle := marbles.NewThrottle[int](2)
func NewThrottle[T comparable](duration float64) *Throttle[T] {
	return &Throttle[T]{
		duration: max(duration, 0),
		name:     "throttle",
	}
}

func (t *Throttle[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](t.Expression(), inputs)
}

func (t *Throttle[T]) Apply(p Unary[T]) Timeline[T] {
	var out []Event[T]
	for _, e := range p.Source.events {
		if len(out) == 0 || e.Time >= out[len(out)-1].Time+t.duration {
			out = append(out, e)
		}
	}
	return Timeline[T]{events: out, termination: p.Source.termination}
}

func (t *Throttle[T]) Expression() string {
	return fmt.Sprintf("%s(%s)", t.name, formatTime(t.duration))
}

func (*Throttle[T]) DocURL() string {
	return DocURLPrefix + "sample.html"
}
