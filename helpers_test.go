package marbles

import "testing"

// ints builds an int timeline for fixtures.
func ints(termination Termination, events ...Event[int]) Timeline[int] {
	return MustTimeline(termination, events...)
}

func assertTimeline[T comparable](t *testing.T, got, want Timeline[T]) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func assertResult[T comparable](t *testing.T, got Single[T], want Result[T]) {
	t.Helper()
	if got.Result() != want {
		t.Errorf("expected %v, got %v", want, got.Result())
	}
}
