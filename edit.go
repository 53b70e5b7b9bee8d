package marbles

import "math"

// The editing operations mirror what a marble editor does while dragging.
// Each returns a new Timeline and leaves the receiver untouched.

// MoveEvent shifts the i-th event by delta. The new time is clamped to the
// time axis. When the event passes a definite termination, the termination
// follows it.
func (t Timeline[T]) MoveEvent(i int, delta float64) Timeline[T] {
	if i < 0 || i >= len(t.events) {
		return t
	}
	events := copyEvents(t.events)
	time := clampTime(events[i].Time + delta)
	events[i] = events[i].MoveTo(time)

	termination := t.termination
	if end, ok := termination.Time(); ok && end < time {
		termination = termination.At(time)
	}
	return newTimeline(termination, events)
}

// MoveTermination shifts a definite termination by delta, clamped to the
// time axis. Events left after the new termination are pulled back onto it.
func (t Timeline[T]) MoveTermination(delta float64) Timeline[T] {
	end, ok := t.termination.Time()
	if !ok {
		return t
	}
	return t.WithTermination(t.termination.At(clampTime(end + delta)))
}

// WithTermination replaces the termination. Events after a definite
// termination are pulled back onto its time.
func (t Timeline[T]) WithTermination(termination Termination) Timeline[T] {
	events := copyEvents(t.events)
	if end, ok := termination.Time(); ok {
		end = clampTime(end)
		termination = termination.At(end)
		for i, e := range events {
			if e.Time > end {
				events[i] = e.MoveTo(end)
			}
		}
	}
	return newTimeline(termination, events)
}

// AddEvent inserts an event, clamping its time to the time axis and
// extending a definite termination that it would otherwise pass.
func (t Timeline[T]) AddEvent(time float64, value T) Timeline[T] {
	time = clampTime(time)
	events := append(copyEvents(t.events), Event[T]{Time: time, Value: value})

	termination := t.termination
	if end, ok := termination.Time(); ok && end < time {
		termination = termination.At(time)
	}
	return newTimeline(termination, events)
}

// RemoveEvent drops the i-th event.
func (t Timeline[T]) RemoveEvent(i int) Timeline[T] {
	if i < 0 || i >= len(t.events) {
		return t
	}
	events := make([]Event[T], 0, len(t.events)-1)
	events = append(events, t.events[:i]...)
	events = append(events, t.events[i+1:]...)
	return Timeline[T]{events: events, termination: t.termination}
}

func clampTime(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return math.Min(math.Max(t, 0), TimelineDuration)
}
