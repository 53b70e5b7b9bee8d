package marbles

import "testing"

func TestTake(t *testing.T) {
	source := ints(ErrorAt(6), Pair(0, 1), Pair(3, 2), Pair(4, 3))

	out := NewTake[int](2).Apply(Unary[int]{Source: source})
	assertTimeline(t, out, ints(CompleteAt(3), Pair(0, 1), Pair(3, 2)))
}

func TestTakeMoreThanAvailable(t *testing.T) {
	source := ints(ErrorAt(6), Pair(0, 1), Pair(3, 2))

	out := NewTake[int](5).Apply(Unary[int]{Source: source})
	assertTimeline(t, out, source)
}

func TestTakeZero(t *testing.T) {
	source := ints(None(), Pair(2, 1))

	out := NewTake[int](0).Apply(Unary[int]{Source: source})
	assertTimeline(t, out, ints(CompleteAt(0)))
	if NewTake[int](-1).Expression() != "take(0)" {
		t.Errorf("negative counts should clamp to 0")
	}
}

func TestTakeExactCountCompletesAtLastEvent(t *testing.T) {
	source := ints(None(), Pair(1, 1), Pair(2, 2))

	out := NewTake[int](2).Apply(Unary[int]{Source: source})
	assertTimeline(t, out, ints(CompleteAt(2), Pair(1, 1), Pair(2, 2)))
}
