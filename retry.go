package marbles

import "fmt"

// Retry resubscribes to a failing timeline.
type Retry[T comparable] struct {
	name  string
	count int
}

// NewRetry creates an operator that replays the source from its start
// each time it fails, at most count times. Replays are cold: the source is
// shifted to begin at the failure time. Once retries are exhausted the
// last failure is passed on.
//
// Whatever is shifted past TimelineDuration falls off the time axis: such
// events are dropped and such a termination becomes None. A source failing
// at time 0 replays identically, so retrying it changes nothing.
//
// Example:
//
//	// [1@0 2@2] error(3), retried once -> [1@0 2@2 1@3 2@5] error(6)
//	retry := marbles.NewRetry[int](1)
func NewRetry[T comparable](count int) *Retry[T] {
	return &Retry[T]{
		count: max(count, 0),
		name:  "retry",
	}
}

func (r *Retry[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](r.Expression(), inputs)
}

func (r *Retry[T]) Apply(p Unary[T]) Timeline[T] {
	source := p.Source
	failure, failing := source.termination.Time()
	if !source.termination.IsError() || !failing || failure == 0 || r.count == 0 {
		return source
	}

	var events []Event[T]
	offset := 0.0
	for attempt := 0; ; attempt++ {
		for _, e := range source.events {
			if shifted := offset + e.Time; shifted <= TimelineDuration {
				events = append(events, e.MoveTo(shifted))
			}
		}
		if attempt == r.count || offset+failure > TimelineDuration {
			break
		}
		offset += failure
	}

	termination := ErrorAt(offset + failure)
	if offset+failure > TimelineDuration {
		termination = None()
	}
	return newTimeline(termination, events)
}

func (r *Retry[T]) Expression() string {
	return fmt.Sprintf("%s(%d)", r.name, r.count)
}

func (*Retry[T]) DocURL() string {
	return DocURLPrefix + "retry.html"
}
