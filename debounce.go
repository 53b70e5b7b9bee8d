package marbles

import "fmt"

// Debounce emits a value only after a quiet period with no newer value.
type Debounce[T comparable] struct {
	name     string
	duration float64
}

// NewDebounce creates an operator that delays every event by duration and
// drops it when a newer event arrives strictly within that delay. Only the
// last event of a rapid burst survives. An event followed by another
// exactly duration later is still emitted.
//
// A completion flushes the pending event at the completion time, while a
// failure discards it. Events delayed past TimelineDuration fall off the
// time axis. The termination is kept.
//
// Example:
//
//	// [1@0 2@1 3@5] complete(10) with duration 2 -> [2@3 3@7] complete(10)
//	debounce := marbles.NewDebounce[int](2)
func NewDebounce[T comparable](duration float64) *Debounce[T] {
	return &Debounce[T]{
		duration: max(duration, 0),
		name:     "debounce",
	}
}

func (d *Debounce[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](d.Expression(), inputs)
}

func (d *Debounce[T]) Apply(p Unary[T]) Timeline[T] {
	source := p.Source
	end, definite := source.termination.Time()

	var out []Event[T]
	for i, e := range source.events {
		due := e.Time + d.duration
		if i+1 < len(source.events) && source.events[i+1].Time < due {
			continue
		}
		if definite && end < due {
			if source.termination.IsComplete() {
				out = append(out, e.MoveTo(end))
			}
			continue
		}
		if due <= TimelineDuration {
			out = append(out, e.MoveTo(due))
		}
	}
	return newTimeline(source.termination, out)
}

func (d *Debounce[T]) Expression() string {
	return fmt.Sprintf("%s(%s)", d.name, formatTime(d.duration))
}

func (*Debounce[T]) DocURL() string {
	return DocURLPrefix + "debounce.html"
}
