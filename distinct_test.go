package marbles

import "testing"

func TestDistinct(t *testing.T) {
	source := ints(CompleteAt(10), Pair(0, 1), Pair(1, 2), Pair(2, 1), Pair(5, 1), Pair(6, 2))

	distinct := NewDistinct[int]()
	assertTimeline(t, distinct.Apply(Unary[int]{Source: source}), ints(CompleteAt(10), Pair(0, 1), Pair(1, 2)))
	if distinct.Expression() != "distinct" {
		t.Errorf("unexpected expression %q", distinct.Expression())
	}
}

func TestDistinctWithWindow(t *testing.T) {
	source := ints(None(), Pair(0, 1), Pair(2, 1), Pair(3, 1), Pair(4, 1), Pair(6, 2))

	distinct := NewDistinct[int]().WithWindow(3)
	assertTimeline(t, distinct.Apply(Unary[int]{Source: source}), ints(None(), Pair(0, 1), Pair(3, 1), Pair(6, 2)))
	if distinct.Expression() != "distinct(3)" {
		t.Errorf("unexpected expression %q", distinct.Expression())
	}
}

func TestDistinctBy(t *testing.T) {
	source := ints(ErrorAt(5), Pair(0, 1), Pair(1, 3), Pair(2, 4), Pair(3, 6))

	parity := NewDistinctBy("parity", func(n int) int { return n % 2 })
	assertTimeline(t, parity.Apply(Unary[int]{Source: source}), ints(ErrorAt(5), Pair(0, 1), Pair(2, 4)))
	if got := parity.WithWindow(1.5).Expression(); got != "distinct(parity, 1.5)" {
		t.Errorf("unexpected expression %q", got)
	}
}
