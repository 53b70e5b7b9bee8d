package marbles

import (
	"fmt"
	"testing"
)

func TestSkip(t *testing.T) {
	source := ints(ErrorAt(9), Pair(0, 0), Pair(1, 1), Pair(4, 2), Pair(6, 3), Pair(8, 4))

	out := NewSkip[int](3).Apply(Unary[int]{Source: source})
	assertTimeline(t, out, ints(ErrorAt(9), Pair(6, 3), Pair(8, 4)))
}

func TestSkipZeroIsIdentity(t *testing.T) {
	source := ints(None(), Pair(0, 1), Pair(0, 2), Pair(3, 1))

	assertTimeline(t, NewSkip[int](0).Apply(Unary[int]{Source: source}), source)
	assertTimeline(t, NewSkip[int](-4).Apply(Unary[int]{Source: source}), source)
}

func TestSkipAll(t *testing.T) {
	source := ints(CompleteAt(5), Pair(1, 1), Pair(2, 2))

	out := NewSkip[int](10).Apply(Unary[int]{Source: source})
	assertTimeline(t, out, ints(CompleteAt(5)))
}

func TestSkipKeepsSimultaneousOrder(t *testing.T) {
	source := ints(None(), Pair(1, 3), Pair(1, 1), Pair(1, 2))

	out := NewSkip[int](1).Apply(Unary[int]{Source: source})
	values := out.Values()
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Errorf("expected [1 2], got %v", values)
	}
}

// Example demonstrates skipping the first values of a timeline.
func ExampleSkip() {
	source := MustTimeline(CompleteAt(10), Pair(0, 1), Pair(1, 2), Pair(4, 3))

	skip := NewSkip[int](2)
	fmt.Println(skip.Expression(), skip.Apply(Unary[int]{Source: source}))
	// Output: skip(2) [3@4] complete(10)
}
