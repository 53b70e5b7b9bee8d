package marbles

import (
	"fmt"
	"math"
)

// Sample emits the most recent value at a fixed period.
type Sample[T comparable] struct {
	name   string
	period float64
}

// NewSample creates an operator that looks at the source every period
// time units, starting at period, and emits the latest value when a new
// one arrived since the previous look. An event at a tick's exact time is
// seen by that tick. Ticks stop at the termination. A non-positive period
// lets every event through.
//
// Example:
//
//	// [1@0 2@1 3@3] complete(10) with period 2 -> [2@2 3@4] complete(10)
//	sample := marbles.NewSample[int](2)
func NewSample[T comparable](period float64) *Sample[T] {
	return &Sample[T]{
		period: period,
		name:   "sample",
	}
}

func (s *Sample[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](s.Expression(), inputs)
}

func (s *Sample[T]) Apply(p Unary[T]) Timeline[T] {
	source := p.Source
	if !(s.period > 0) {
		return source
	}

	limit := TimelineDuration
	if end, ok := source.termination.Time(); ok {
		limit = end
	}

	var out []Event[T]
	for i, e := range source.events {
		tick := s.tick(e.Time)
		if tick > limit {
			break
		}
		if i+1 < len(source.events) && s.tick(source.events[i+1].Time) == tick {
			continue
		}
		out = append(out, e.MoveTo(tick))
	}
	return Timeline[T]{events: out, termination: source.termination}
}

// tick returns the first tick at or after time, never earlier than period.
func (s *Sample[T]) tick(time float64) float64 {
	k := max(math.Ceil(time/s.period), 1)
	if k > 1 && (k-1)*s.period >= time {
		k--
	}
	if k*s.period < time {
		k++
	}
	return k * s.period
}

func (s *Sample[T]) Expression() string {
	return fmt.Sprintf("%s(%s)", s.name, formatTime(s.period))
}

func (*Sample[T]) DocURL() string {
	return DocURLPrefix + "sample.html"
}
