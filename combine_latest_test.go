package marbles

import (
	"errors"
	"fmt"
	"testing"
)

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestCombineLatest(t *testing.T) {
	tests := []struct {
		name    string
		sources []Timeline[int]
		want    Timeline[int]
	}{
		{
			name:    "no sources",
			sources: nil,
			want:    ints(None()),
		},
		{
			name:    "never sources",
			sources: []Timeline[int]{ints(None()), ints(None())},
			want:    ints(None()),
		},
		{
			name:    "one source",
			sources: []Timeline[int]{ints(ErrorAt(8), Pair(0, 1), Pair(2, 3), Pair(7, 4))},
			want:    ints(ErrorAt(8), Pair(0, 1), Pair(2, 3), Pair(7, 4)),
		},
		{
			name:    "one empty source",
			sources: []Timeline[int]{ints(ErrorAt(8), Pair(0, 1), Pair(2, 3), Pair(7, 4)), ints(CompleteAt(0))},
			want:    ints(CompleteAt(0)),
		},
		{
			name:    "one never source",
			sources: []Timeline[int]{ints(ErrorAt(8), Pair(0, 1), Pair(2, 3), Pair(7, 4)), ints(None())},
			want:    ints(ErrorAt(8)),
		},
		{
			name:    "complete before error",
			sources: []Timeline[int]{ints(ErrorAt(1)), ints(CompleteAt(0))},
			want:    ints(CompleteAt(0)),
		},
		{
			name: "combine values",
			sources: []Timeline[int]{
				ints(CompleteAt(10), Pair(0, 1), Pair(2, 3), Pair(4, 4)),
				ints(CompleteAt(7), Pair(1, 2), Pair(5, 3), Pair(7, 4)),
			},
			want: ints(CompleteAt(10), Pair(1, 3), Pair(2, 5), Pair(4, 6), Pair(5, 7), Pair(7, 8)),
		},
		{
			name: "stop at error",
			sources: []Timeline[int]{
				ints(ErrorAt(5), Pair(0, 1), Pair(4, 4)),
				ints(CompleteAt(7), Pair(1, 2), Pair(6, 3)),
			},
			want: ints(ErrorAt(5), Pair(1, 3), Pair(4, 6)),
		},
		{
			name: "error before warm-up",
			sources: []Timeline[int]{
				ints(ErrorAt(5), Pair(0, 1)),
				ints(CompleteAt(7), Pair(6, 2)),
			},
			want: ints(ErrorAt(5)),
		},
		{
			name: "errors only",
			sources: []Timeline[int]{
				ints(ErrorAt(6), Pair(0, 1)),
				ints(ErrorAt(8), Pair(1, 2)),
			},
			want: ints(ErrorAt(6), Pair(1, 3)),
		},
		{
			name: "error after a completed source",
			sources: []Timeline[int]{
				ints(ErrorAt(8), Pair(0, 1), Pair(5, 4)),
				ints(CompleteAt(3), Pair(1, 2)),
			},
			want: ints(ErrorAt(8), Pair(1, 3), Pair(5, 6)),
		},
		{
			name: "unterminated source keeps the output open",
			sources: []Timeline[int]{
				ints(CompleteAt(3), Pair(0, 1)),
				ints(None(), Pair(1, 2), Pair(6, 3)),
			},
			want: ints(None(), Pair(1, 3), Pair(6, 4)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewCombineLatest("sum", sum).Apply(Sources(tt.sources...))
			assertTimeline(t, out, tt.want)
		})
	}
}

func TestCombineLatestCollapsesSimultaneousEvents(t *testing.T) {
	a := ints(None(), Pair(1, 1), Pair(3, 2))
	b := ints(None(), Pair(3, 10), Pair(3, 20))

	out := NewCombineLatest("sum", sum).Apply(Sources(a, b))
	assertTimeline(t, out, ints(None(), Pair(3, 22)))
}

func TestCombineLatestPassesValuesInSourceOrder(t *testing.T) {
	a := ints(None(), Pair(0, 1))
	b := ints(None(), Pair(1, 2))
	c := ints(None(), Pair(2, 3))

	digits := NewCombineLatest("digits", func(values []int) string {
		return fmt.Sprint(values)
	})
	out := digits.Apply(Sources(a, b, c))
	assertTimeline(t, out, MustTimeline(None(), Pair(2, "[1 2 3]")))

	if digits.Expression() != "combineLatest(digits)" {
		t.Errorf("unexpected expression %q", digits.Expression())
	}
}

func TestCombineLatestRejectsMixedTypes(t *testing.T) {
	inputs := []Stream{ints(None()), MustTimeline[string](None())}

	_, err := Run[Variadic[int], Timeline[int]](NewCombineLatest("sum", sum), inputs)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Index != 1 {
		t.Errorf("expected a type failure at input 1, got %v", err)
	}
}
