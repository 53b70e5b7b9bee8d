// Package testing provides test utilities for marbles.
package testing

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/zoobzio/marbles"
)

// Ints builds an int timeline, failing the test on invalid input.
func Ints(t testing.TB, termination marbles.Termination, events ...marbles.Event[int]) marbles.Timeline[int] {
	t.Helper()

	timeline, err := marbles.NewTimeline(termination, events...)
	if err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	return timeline
}

// Apply runs runner over inputs and returns its output as Out. The test
// fails when the operator does not apply or produces another stream type.
func Apply[Out marbles.Stream](t testing.TB, runner marbles.Runner, inputs ...marbles.Stream) Out {
	t.Helper()

	out, err := runner.Run(inputs)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", runner.Expression(), err)
	}
	typed, ok := out.(Out)
	if !ok {
		t.Fatalf("%s: expected %T, got %T", runner.Expression(), typed, out)
	}
	return typed
}

// AssertSkipped verifies that runner does not apply to inputs.
func AssertSkipped(t testing.TB, runner marbles.Runner, inputs ...marbles.Stream) {
	t.Helper()

	out, err := runner.Run(inputs)
	if !marbles.IsValidation(err) {
		t.Errorf("%s: expected a validation failure, got %v (output %v)", runner.Expression(), err, out)
	}
}

// AssertTimeline verifies that got holds the same events and termination
// as want.
func AssertTimeline[T comparable](t testing.TB, got, want marbles.Timeline[T]) {
	t.Helper()

	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// AssertValues verifies the event values of a timeline in time order.
func AssertValues[T comparable](t testing.TB, got marbles.Timeline[T], want ...T) {
	t.Helper()

	values := got.Values()
	if len(values) != len(want) {
		t.Errorf("expected %d values, got %d: %v", len(want), len(values), got)
		return
	}
	for i, v := range values {
		if v != want[i] {
			t.Errorf("value %d: expected %v, got %v", i, want[i], v)
		}
	}
}

// AssertResult verifies the outcome of a single.
func AssertResult[T comparable](t testing.TB, got marbles.Single[T], want marbles.Result[T]) {
	t.Helper()

	if got.Result() != want {
		t.Errorf("expected %v, got %v", want, got.Result())
	}
}

// AssertWellFormed verifies the model invariants on any stream: times on
// the axis, marbles in time order and none after a definite termination.
func AssertWellFormed(t testing.TB, s marbles.Stream) {
	t.Helper()

	end, definite := s.Terminal().Time()
	if definite && (end < 0 || end > marbles.TimelineDuration) {
		t.Errorf("termination %v is off the time axis", s.Terminal())
	}

	previous := 0.0
	for i, m := range s.Marbles() {
		if m.Time < 0 || m.Time > marbles.TimelineDuration {
			t.Errorf("marble %d at %g is off the time axis in %v", i, m.Time, s)
		}
		if m.Time < previous {
			t.Errorf("marble %d at %g is out of order in %v", i, m.Time, s)
		}
		if definite && m.Time > end {
			t.Errorf("marble %d at %g follows the termination in %v", i, m.Time, s)
		}
		previous = m.Time
	}
}

// RandomInts builds a well-formed timeline of up to n events with small
// values on a half-unit grid, so that simultaneous events are common.
func RandomInts(rng *rand.Rand, n int) marbles.Timeline[int] {
	grid := func() float64 { return float64(rng.Intn(int(2*marbles.TimelineDuration)+1)) / 2 }

	var termination marbles.Termination
	switch rng.Intn(3) {
	case 0:
		termination = marbles.None()
	case 1:
		termination = marbles.CompleteAt(grid())
	default:
		termination = marbles.ErrorAt(grid())
	}

	limit := marbles.TimelineDuration
	if end, ok := termination.Time(); ok {
		limit = end
	}
	events := make([]marbles.Event[int], 0, n)
	for i := rng.Intn(n + 1); i > 0; i-- {
		at := float64(rng.Intn(int(2*limit)+1)) / 2
		events = append(events, marbles.Pair(at, rng.Intn(10)-3))
	}

	timeline, err := marbles.NewTimeline(termination, events...)
	if err != nil {
		panic(errors.Join(errors.New("random timeline"), err))
	}
	return timeline
}
