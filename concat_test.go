package marbles

import (
	"fmt"
	"testing"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name    string
		sources []Timeline[int]
		want    Timeline[int]
	}{
		{
			name:    "no sources",
			sources: nil,
			want:    ints(CompleteAt(0)),
		},
		{
			name:    "one source",
			sources: []Timeline[int]{ints(ErrorAt(4), Pair(1, 1))},
			want:    ints(ErrorAt(4), Pair(1, 1)),
		},
		{
			name: "shifts each source",
			sources: []Timeline[int]{
				ints(CompleteAt(3), Pair(0, 1), Pair(2, 2)),
				ints(CompleteAt(2), Pair(1, 3)),
			},
			want: ints(CompleteAt(5), Pair(0, 1), Pair(2, 2), Pair(4, 3)),
		},
		{
			name: "error stops",
			sources: []Timeline[int]{
				ints(CompleteAt(3), Pair(0, 1)),
				ints(ErrorAt(2), Pair(1, 2)),
				ints(CompleteAt(1), Pair(0, 3)),
			},
			want: ints(ErrorAt(5), Pair(0, 1), Pair(4, 2)),
		},
		{
			name: "unterminated source hides the rest",
			sources: []Timeline[int]{
				ints(None(), Pair(1, 1)),
				ints(CompleteAt(1), Pair(0, 2)),
			},
			want: ints(None(), Pair(1, 1)),
		},
		{
			name: "falls off the time axis",
			sources: []Timeline[int]{
				ints(CompleteAt(8), Pair(1, 1)),
				ints(CompleteAt(4), Pair(1, 2), Pair(3, 3)),
			},
			want: ints(None(), Pair(1, 1), Pair(9, 2)),
		},
		{
			name: "empty sources complete at once",
			sources: []Timeline[int]{
				ints(CompleteAt(0)),
				ints(CompleteAt(2), Pair(2, 1)),
			},
			want: ints(CompleteAt(2), Pair(2, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTimeline(t, NewConcat[int]().Apply(Sources(tt.sources...)), tt.want)
		})
	}
}

// Example demonstrates playing one timeline after another.
func ExampleConcat() {
	first := MustTimeline(CompleteAt(3), Pair(0, 1), Pair(2, 2))
	second := MustTimeline(CompleteAt(2), Pair(1, 3))

	fmt.Println(NewConcat[int]().Apply(Sources(first, second)))
	// Output: [1@0 2@2 3@4] complete(5)
}
