package marbles

import (
	"fmt"
	"slices"
)

// Event is an immutable value emitted at a point of the simulated time axis.
type Event[T comparable] struct {
	Value T
	Time  float64
}

// Pair is a shorthand for building an event.
func Pair[T comparable](time float64, value T) Event[T] {
	return Event[T]{Time: time, Value: value}
}

// String returns the event as "value@time".
func (e Event[T]) String() string {
	return fmt.Sprintf("%v@%s", e.Value, formatTime(e.Time))
}

// MoveTo returns a copy of the event at the given time.
func (e Event[T]) MoveTo(time float64) Event[T] {
	return Event[T]{Time: time, Value: e.Value}
}

// sortEvents stable-sorts events by time in place, so simultaneous events
// keep their declaration order.
func sortEvents[T comparable](events []Event[T]) {
	slices.SortStableFunc(events, func(a, b Event[T]) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})
}

// dedupeEvents drops repeated (time, value) pairs, keeping the first one.
func dedupeEvents[T comparable](events []Event[T]) []Event[T] {
	seen := make(map[Event[T]]struct{}, len(events))
	out := make([]Event[T], 0, len(events))
	for _, e := range events {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// clipEvents keeps the events observable before a definite termination.
func clipEvents[T comparable](events []Event[T], termination Termination) []Event[T] {
	end, ok := termination.Time()
	if !ok {
		return events
	}
	out := events[:0:0]
	for _, e := range events {
		if e.Time <= end {
			out = append(out, e)
		}
	}
	return out
}

func formatTime(t float64) string {
	return fmt.Sprintf("%g", t)
}
