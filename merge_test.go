package marbles

import (
	"fmt"
	"testing"
)

func TestMergeNoSources(t *testing.T) {
	out := NewMerge[int]().Apply(Sources[int]())
	assertTimeline(t, out, ints(None()))
}

func TestMergeSingleSourceIsIdentity(t *testing.T) {
	sources := []Timeline[int]{
		ints(ErrorAt(8), Pair(0, 1), Pair(2, 3), Pair(7, 4)),
		ints(CompleteAt(3), Pair(1, 1), Pair(1, 2)),
		ints(None(), Pair(9, 9)),
		ints(CompleteAt(0)),
	}

	merge := NewMerge[int]()
	for _, source := range sources {
		once := merge.Apply(Sources(source))
		assertTimeline(t, once, source)
		assertTimeline(t, merge.Apply(Sources(once)), once)
	}
}

func TestMergeTermination(t *testing.T) {
	tests := []struct {
		name    string
		sources []Timeline[int]
		want    Timeline[int]
	}{
		{
			name: "all complete",
			sources: []Timeline[int]{
				ints(CompleteAt(4), Pair(1, 1)),
				ints(CompleteAt(8), Pair(2, 2), Pair(7, 3)),
			},
			want: ints(CompleteAt(8), Pair(1, 1), Pair(2, 2), Pair(7, 3)),
		},
		{
			name: "error clips",
			sources: []Timeline[int]{
				ints(ErrorAt(5), Pair(1, 1)),
				ints(CompleteAt(8), Pair(2, 2), Pair(7, 3)),
			},
			want: ints(ErrorAt(5), Pair(1, 1), Pair(2, 2)),
		},
		{
			name: "error wins over an earlier completion",
			sources: []Timeline[int]{
				ints(CompleteAt(2)),
				ints(ErrorAt(6), Pair(3, 3)),
			},
			want: ints(ErrorAt(6), Pair(3, 3)),
		},
		{
			name: "earliest error",
			sources: []Timeline[int]{
				ints(ErrorAt(7), Pair(6, 1)),
				ints(ErrorAt(3), Pair(2, 2)),
				ints(None(), Pair(9, 3)),
			},
			want: ints(ErrorAt(3), Pair(2, 2)),
		},
		{
			name: "one unterminated source",
			sources: []Timeline[int]{
				ints(CompleteAt(3), Pair(1, 1)),
				ints(None(), Pair(9, 2)),
			},
			want: ints(None(), Pair(1, 1), Pair(9, 2)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTimeline(t, NewMerge[int]().Apply(Sources(tt.sources...)), tt.want)
		})
	}
}

func TestMergeIsCommutativeAndAssociative(t *testing.T) {
	a := ints(ErrorAt(6), Pair(1, 1), Pair(5, 2))
	b := ints(CompleteAt(9), Pair(0, 3), Pair(7, 4))
	c := ints(None(), Pair(2, 5), Pair(8, 6))

	merge := NewMerge[int]()
	want := merge.Apply(Sources(a, b, c))

	orders := [][]Timeline[int]{{a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}}
	for _, order := range orders {
		assertTimeline(t, merge.Apply(Sources(order...)), want)
	}

	assertTimeline(t, merge.Apply(Sources(merge.Apply(Sources(a, b)), c)), want)
	assertTimeline(t, merge.Apply(Sources(a, merge.Apply(Sources(b, c)))), want)
}

func TestMergeSimultaneousEventsFollowSourceOrder(t *testing.T) {
	a := ints(None(), Pair(2, 1))
	b := ints(None(), Pair(2, 2))

	values := NewMerge[int]().Apply(Sources(b, a)).Values()
	if len(values) != 2 || values[0] != 2 || values[1] != 1 {
		t.Errorf("expected [2 1], got %v", values)
	}
}

// Example demonstrates merging two timelines.
func ExampleMerge() {
	ticks := MustTimeline(CompleteAt(6), Pair(0, 1), Pair(4, 2))
	clicks := MustTimeline(CompleteAt(9), Pair(2, 10))

	fmt.Println(NewMerge[int]().Apply(Sources(ticks, clicks)))
	// Output: [1@0 10@2 2@4] complete(9)
}
