package marbles

// Merge interleaves several timelines into one.
type Merge[T comparable] struct {
	name string
}

// NewMerge creates an operator combining any number of timelines of the
// same element type into one.
//
// Termination:
//   - Any source failing makes the output fail at the earliest failure
//     time. A failure wins over completions whatever their times.
//   - Otherwise, when every source completes, the output completes at the
//     latest completion time: merge finishes once all sources have.
//   - Otherwise the output does not terminate.
//
// Events are the time-ordered union of every source's events, sources
// declared first going first on a tie. Events after a definite output
// termination are unobservable and dropped. merge of no source never
// terminates, and merge of one source returns that source.
//
// Example:
//
//	merge := marbles.NewMerge[int]()
//	out := merge.Apply(marbles.Sources(ticks, clicks))
func NewMerge[T comparable]() *Merge[T] {
	return &Merge[T]{
		name: "merge",
	}
}

func (m *Merge[T]) Params(inputs []Stream) (Variadic[T], error) {
	return variadicParams[T](m.Expression(), inputs)
}

func (*Merge[T]) Apply(p Variadic[T]) Timeline[T] {
	if len(p.Sources) == 0 {
		return Timeline[T]{}
	}

	termination := mergeTermination(p.Sources)

	var events []Event[T]
	for _, source := range p.Sources {
		events = append(events, source.events...)
	}
	sortEvents(events)
	return newTimeline(termination, clipEvents(events, termination))
}

func mergeTermination[T comparable](sources []Timeline[T]) Termination {
	firstError := None()
	allComplete := true
	lastComplete := 0.0

	for _, source := range sources {
		switch source.termination.Kind() {
		case TerminationError:
			firstError = earliest(firstError, source.termination)
		case TerminationComplete:
			lastComplete = max(lastComplete, source.termination.time)
		case TerminationNone:
			allComplete = false
		}
	}

	switch {
	case firstError.IsDefinite():
		return firstError
	case allComplete:
		return CompleteAt(lastComplete)
	default:
		return None()
	}
}

func (m *Merge[T]) Expression() string {
	return m.name
}

func (*Merge[T]) DocURL() string {
	return DocURLPrefix + "merge.html"
}
