package marbles

import "fmt"

// AggregateFunc folds one value into an accumulated state.
type AggregateFunc[T, A any] func(state A, item T) A

// Scan emits the running aggregate of a timeline: each event is replaced
// by the state obtained after folding its value in.
type Scan[T, A comparable] struct {
	seed  A
	fn    AggregateFunc[T, A]
	name  string
	label string
}

// NewScan creates a scan starting from seed. label names fn in the
// expression, as in "scan(sum)". Event times and the termination are kept.
//
// Example:
//
//	// [1@0 2@3 4@5] complete(8) -> [1@0 3@3 7@5] complete(8)
//	running := marbles.NewScan("sum", 0, func(total, n int) int { return total + n })
func NewScan[T, A comparable](label string, seed A, fn AggregateFunc[T, A]) *Scan[T, A] {
	return &Scan[T, A]{
		seed:  seed,
		fn:    fn,
		name:  "scan",
		label: label,
	}
}

func (s *Scan[T, A]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](s.Expression(), inputs)
}

func (s *Scan[T, A]) Apply(p Unary[T]) Timeline[A] {
	state := s.seed
	events := make([]Event[A], len(p.Source.events))
	for i, e := range p.Source.events {
		state = s.fn(state, e.Value)
		events[i] = Event[A]{Time: e.Time, Value: state}
	}
	return newTimeline(p.Source.termination, events)
}

func (s *Scan[T, A]) Expression() string {
	return fmt.Sprintf("%s(%s)", s.name, s.label)
}

func (*Scan[T, A]) DocURL() string {
	return DocURLPrefix + "scan.html"
}

// Reduce folds a whole timeline into one value once it completes.
type Reduce[T, A comparable] struct {
	seed     A
	fn       AggregateFunc[T, A]
	name     string
	label    string
	nonEmpty bool
}

// NewReduce creates a reduction starting from seed. A completed source
// gives Success at the completion time, the seed itself when nothing was
// emitted unless RequireValues is set. A failed source gives Error, and an
// unterminated one None.
func NewReduce[T, A comparable](label string, seed A, fn AggregateFunc[T, A]) *Reduce[T, A] {
	return &Reduce[T, A]{
		seed:  seed,
		fn:    fn,
		name:  "reduce",
		label: label,
	}
}

// RequireValues makes a completed source without events fail at its
// completion time, as last does, instead of giving the seed. Use it when
// the seed is a sentinel rather than a meaningful result.
func (r *Reduce[T, A]) RequireValues() *Reduce[T, A] {
	r.nonEmpty = true
	return r
}

func (r *Reduce[T, A]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](r.Expression(), inputs)
}

func (r *Reduce[T, A]) Apply(p Unary[T]) Single[A] {
	return NewSingle(MatchTermination(p.Source.termination,
		NewPending[A],
		func(time float64) Result[A] {
			if r.nonEmpty && len(p.Source.events) == 0 {
				return NewFailure[A](time)
			}
			state := r.seed
			for _, e := range p.Source.events {
				state = r.fn(state, e.Value)
			}
			return NewSuccess(time, state)
		},
		NewFailure[A],
	))
}

func (r *Reduce[T, A]) Expression() string {
	return fmt.Sprintf("%s(%s)", r.name, r.label)
}

func (*Reduce[T, A]) DocURL() string {
	return DocURLPrefix + "reduce.html"
}
