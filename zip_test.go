package marbles

import "testing"

func TestZip(t *testing.T) {
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
			name: "pairs by position",
			sources: []Timeline[int]{
				ints(CompleteAt(8), Pair(0, 1), Pair(2, 2), Pair(6, 3)),
				ints(CompleteAt(5), Pair(1, 10), Pair(4, 20)),
			},
			want: ints(CompleteAt(5), Pair(1, 11), Pair(4, 22)),
		},
		{
			name: "completed source waits for its last pair",
			sources: []Timeline[int]{
				ints(CompleteAt(2), Pair(0, 1), Pair(1, 2)),
				ints(None(), Pair(3, 10), Pair(6, 20)),
			},
			want: ints(CompleteAt(6), Pair(3, 11), Pair(6, 22)),
		},
		{
			name: "completed source with unpaired values ends nothing",
			sources: []Timeline[int]{
				ints(CompleteAt(2), Pair(0, 1), Pair(1, 2)),
				ints(None(), Pair(3, 10)),
			},
			want: ints(None(), Pair(3, 11)),
		},
		{
			name: "error clips",
			sources: []Timeline[int]{
				ints(ErrorAt(6), Pair(0, 1), Pair(5, 2)),
				ints(CompleteAt(9), Pair(1, 10), Pair(7, 20)),
			},
			want: ints(ErrorAt(6), Pair(1, 11)),
		},
		{
			name: "error wins a tie",
			sources: []Timeline[int]{
				ints(CompleteAt(5), Pair(0, 1)),
				ints(ErrorAt(5), Pair(2, 10)),
			},
			want: ints(ErrorAt(5), Pair(2, 11)),
		},
		{
			name: "empty completed source",
			sources: []Timeline[int]{
				ints(CompleteAt(4)),
				ints(ErrorAt(7), Pair(1, 10)),
			},
			want: ints(CompleteAt(4)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTimeline(t, NewZip("sum", sum).Apply(Sources(tt.sources...)), tt.want)
		})
	}
}

func TestZipExpression(t *testing.T) {
	if got := NewZip("sum", sum).Expression(); got != "zip(sum)" {
		t.Errorf("unexpected expression %q", got)
	}
}
