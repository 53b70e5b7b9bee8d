package marbles

import (
	"fmt"
	"slices"
)

// CombineLatest combines the most recent value of every source each time
// one of them emits.
type CombineLatest[T, R comparable] struct {
	combiner func([]T) R
	name     string
	label    string
}

// NewCombineLatest creates an N-ary combining operator. label names the
// combiner in the expression, as in "combineLatest(sum)".
//
// Nothing is emitted until every source has emitted at least once. From
// then on, each instant at which some source emits produces one output:
// the combiner applied to the latest value of every source, in source
// order. Simultaneous events from several sources collapse into a single
// output that sees all of them.
//
// The output terminates at the earliest of:
//   - a source failure,
//   - a source completing without ever emitting, since no combination can
//     be produced any more,
//   - the latest completion, once every source has completed.
//
// Termination kinds carry no priority: an earlier completion of an empty
// source beats a later failure. Outputs after the termination are dropped,
// so a termination before the warm-up leaves the output empty.
//
// Example:
//
//	sum := marbles.NewCombineLatest("sum", func(values []int) int {
//		total := 0
//		for _, v := range values {
//			total += v
//		}
//		return total
//	})
//	out := sum.Apply(marbles.Sources(a, b))
func NewCombineLatest[T, R comparable](label string, combiner func([]T) R) *CombineLatest[T, R] {
	return &CombineLatest[T, R]{
		combiner: combiner,
		name:     "combineLatest",
		label:    label,
	}
}

func (c *CombineLatest[T, R]) Params(inputs []Stream) (Variadic[T], error) {
	return variadicParams[T](c.Expression(), inputs)
}

// sourced is an event tagged with the index of the source emitting it.
type sourced[T comparable] struct {
	event  Event[T]
	source int
}

func (c *CombineLatest[T, R]) Apply(p Variadic[T]) Timeline[R] {
	n := len(p.Sources)
	if n == 0 {
		return Timeline[R]{}
	}

	termination := combineLatestTermination(p.Sources)
	end, definite := termination.Time()

	var all []sourced[T]
	for i, source := range p.Sources {
		for _, e := range source.events {
			all = append(all, sourced[T]{event: e, source: i})
		}
	}
	slices.SortStableFunc(all, func(a, b sourced[T]) int {
		switch {
		case a.event.Time < b.event.Time:
			return -1
		case a.event.Time > b.event.Time:
			return 1
		default:
			return 0
		}
	})

	latest := make([]T, n)
	seen := make([]bool, n)
	warm := 0
	var out []Event[R]

	for i := 0; i < len(all); {
		time := all[i].event.Time
		if definite && time > end {
			break
		}
		for ; i < len(all) && all[i].event.Time == time; i++ {
			s := all[i].source
			if !seen[s] {
				seen[s] = true
				warm++
			}
			latest[s] = all[i].event.Value
		}
		if warm == n {
			out = append(out, Event[R]{Time: time, Value: c.combiner(slices.Clone(latest))})
		}
	}

	return newTimeline(termination, out)
}

func combineLatestTermination[T comparable](sources []Timeline[T]) Termination {
	result := None()
	allComplete := true
	lastComplete := 0.0

	for _, source := range sources {
		switch source.termination.Kind() {
		case TerminationError:
			result = earliest(result, source.termination)
			allComplete = false
		case TerminationComplete:
			if len(source.events) == 0 {
				result = earliest(result, source.termination)
			}
			lastComplete = max(lastComplete, source.termination.time)
		case TerminationNone:
			allComplete = false
		}
	}

	if allComplete {
		result = earliest(result, CompleteAt(lastComplete))
	}
	return result
}

func (c *CombineLatest[T, R]) Expression() string {
	return fmt.Sprintf("%s(%s)", c.name, c.label)
}

func (*CombineLatest[T, R]) DocURL() string {
	return DocURLPrefix + "combinelatest.html"
}
