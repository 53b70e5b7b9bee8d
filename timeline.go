package marbles

import (
	"math"
	"strings"
)

// Timeline is the recorded behavior of one multi-valued stream: a set of
// events ordered by time plus a Termination.
//
// Events sharing a time keep their declaration order. A (time, value) pair
// appears at most once, and no event is later than a definite termination.
// A Timeline is immutable: accessors return copies and every edit or
// operator builds a new value.
type Timeline[T comparable] struct {
	events      []Event[T]
	termination Termination
}

// NewTimeline validates and builds a timeline. Events are stable-sorted by
// time and duplicate (time, value) pairs are dropped. It fails with a
// *TimelineError wrapping ErrOutOfRange or ErrAfterTermination.
func NewTimeline[T comparable](termination Termination, events ...Event[T]) (Timeline[T], error) {
	end, definite := termination.Time()
	if definite && !inRange(end) {
		return Timeline[T]{}, &TimelineError{Err: ErrOutOfRange, Index: -1, Time: end}
	}
	for i, e := range events {
		if !inRange(e.Time) {
			return Timeline[T]{}, &TimelineError{Err: ErrOutOfRange, Index: i, Time: e.Time}
		}
		if definite && e.Time > end {
			return Timeline[T]{}, &TimelineError{Err: ErrAfterTermination, Index: i, Time: e.Time}
		}
	}
	return newTimeline(termination, copyEvents(events)), nil
}

// MustTimeline is NewTimeline for fixtures; it panics on invalid input.
func MustTimeline[T comparable](termination Termination, events ...Event[T]) Timeline[T] {
	t, err := NewTimeline(termination, events...)
	if err != nil {
		panic(err)
	}
	return t
}

// newTimeline takes ownership of events, which operators guarantee to be
// in range and not after the termination.
func newTimeline[T comparable](termination Termination, events []Event[T]) Timeline[T] {
	sortEvents(events)
	return Timeline[T]{
		events:      dedupeEvents(events),
		termination: termination,
	}
}

func inRange(t float64) bool {
	return !math.IsNaN(t) && t >= 0 && t <= TimelineDuration
}

func copyEvents[T comparable](events []Event[T]) []Event[T] {
	out := make([]Event[T], len(events))
	copy(out, events)
	return out
}

// Events returns a copy of the events in time order.
func (t Timeline[T]) Events() []Event[T] {
	return copyEvents(t.events)
}

// Len returns the number of events.
func (t Timeline[T]) Len() int {
	return len(t.events)
}

// Event returns the i-th event in time order.
func (t Timeline[T]) Event(i int) Event[T] {
	return t.events[i]
}

// Values returns the event values in time order.
func (t Timeline[T]) Values() []T {
	values := make([]T, len(t.events))
	for i, e := range t.events {
		values[i] = e.Value
	}
	return values
}

// Termination returns how the timeline terminates.
func (t Timeline[T]) Termination() Termination {
	return t.termination
}

// Terminal implements Stream.
func (t Timeline[T]) Terminal() Termination {
	return t.termination
}

// Marbles implements Stream.
func (t Timeline[T]) Marbles() []Marble {
	marbles := make([]Marble, len(t.events))
	for i, e := range t.events {
		marbles[i] = Marble{Time: e.Time, Value: e.Value}
	}
	return marbles
}

// Equal reports whether both timelines hold the same set of events and the
// same termination.
func (t Timeline[T]) Equal(other Timeline[T]) bool {
	if t.termination != other.termination || len(t.events) != len(other.events) {
		return false
	}
	set := make(map[Event[T]]struct{}, len(t.events))
	for _, e := range t.events {
		set[e] = struct{}{}
	}
	for _, e := range other.events {
		if _, ok := set[e]; !ok {
			return false
		}
	}
	return true
}

// String renders the timeline as "[1@0 3@2] error(8)".
func (t Timeline[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range t.events {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteString("] ")
	b.WriteString(t.termination.String())
	return b.String()
}
