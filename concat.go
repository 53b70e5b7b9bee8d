package marbles

// Concat plays timelines one after the other.
type Concat[T comparable] struct {
	name string
}

// NewConcat creates an operator subscribing to each source once the
// previous one completed. Sources are replayed from their own start, so a
// source's events are shifted by the sum of the completion times before it.
//
// A source that never terminates hides every later source; a failing one
// ends the output with an Error at its shifted time. When every source
// completes the output completes after the last of them. Whatever is
// shifted past TimelineDuration falls off the time axis: such events are
// dropped, and such a termination becomes None. concat of no source
// completes at once.
func NewConcat[T comparable]() *Concat[T] {
	return &Concat[T]{name: "concat"}
}

func (c *Concat[T]) Params(inputs []Stream) (Variadic[T], error) {
	return variadicParams[T](c.Expression(), inputs)
}

func (*Concat[T]) Apply(p Variadic[T]) Timeline[T] {
	offset := 0.0
	termination := CompleteAt(0)
	var events []Event[T]

sources:
	for _, source := range p.Sources {
		for _, e := range source.events {
			if shifted := offset + e.Time; shifted <= TimelineDuration {
				events = append(events, e.MoveTo(shifted))
			}
		}
		switch source.termination.Kind() {
		case TerminationComplete:
			offset += source.termination.time
			termination = CompleteAt(offset)
		case TerminationError:
			termination = ErrorAt(offset + source.termination.time)
			break sources
		case TerminationNone:
			termination = None()
			break sources
		}
	}

	if end, ok := termination.Time(); ok && end > TimelineDuration {
		termination = None()
	}
	return newTimeline(termination, events)
}

func (c *Concat[T]) Expression() string {
	return c.name
}

func (*Concat[T]) DocURL() string {
	return DocURLPrefix + "concat.html"
}
