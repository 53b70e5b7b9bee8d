package marbles

import "fmt"

// Zip pairs up the events of several timelines by position.
type Zip[T, R comparable] struct {
	combiner func([]T) R
	name     string
	label    string
}

// NewZip creates an N-ary operator whose i-th output combines the i-th
// event of every source, emitted once the slowest of them has arrived.
//
// A failure terminates the output at its time. A completed source holding
// n events ends the output once its n-th value has been zipped: at the
// completion time itself when that already happened, or at the n-th
// output otherwise. A completed source whose n-th output never comes ends
// nothing. The earliest of these candidates wins, a failure winning a tie.
// Outputs after the termination are dropped.
func NewZip[T, R comparable](label string, combiner func([]T) R) *Zip[T, R] {
	return &Zip[T, R]{
		combiner: combiner,
		name:     "zip",
		label:    label,
	}
}

func (z *Zip[T, R]) Params(inputs []Stream) (Variadic[T], error) {
	return variadicParams[T](z.Expression(), inputs)
}

func (z *Zip[T, R]) Apply(p Variadic[T]) Timeline[R] {
	if len(p.Sources) == 0 {
		return Timeline[R]{}
	}

	rounds := len(p.Sources[0].events)
	for _, source := range p.Sources[1:] {
		rounds = min(rounds, len(source.events))
	}

	out := make([]Event[R], rounds)
	for i := range out {
		values := make([]T, len(p.Sources))
		time := 0.0
		for j, source := range p.Sources {
			values[j] = source.events[i].Value
			time = max(time, source.events[i].Time)
		}
		out[i] = Event[R]{Time: time, Value: z.combiner(values)}
	}

	termination := None()
	for _, source := range p.Sources {
		if source.termination.IsError() {
			termination = earliest(termination, source.termination)
		}
	}
	for _, source := range p.Sources {
		if !source.termination.IsComplete() {
			continue
		}
		n := len(source.events)
		switch {
		case n == 0:
			termination = earliest(termination, source.termination)
		case n <= rounds:
			termination = earliest(termination, CompleteAt(max(source.termination.time, out[n-1].Time)))
		}
	}

	return newTimeline(termination, clipEvents(out, termination))
}

func (z *Zip[T, R]) Expression() string {
	return fmt.Sprintf("%s(%s)", z.name, z.label)
}

func (*Zip[T, R]) DocURL() string {
	return DocURLPrefix + "zip.html"
}
