package render

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/marbles"
)

func assertGolden(t *testing.T, name string, rows []Row, width int) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, rows, width))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func TestTextCombineLatest(t *testing.T) {
	a := marbles.MustTimeline(marbles.CompleteAt(10), marbles.Pair(0, 1), marbles.Pair(2, 3), marbles.Pair(4, 4))
	b := marbles.MustTimeline(marbles.CompleteAt(7), marbles.Pair(1, 2), marbles.Pair(5, 3), marbles.Pair(7, 4))

	sum := marbles.NewCombineLatest("sum", func(values []int) int { return values[0] + values[1] })
	out := sum.Apply(marbles.Sources(a, b))

	assertGolden(t, "combine_latest", []Row{
		{Name: "a", Stream: a},
		{Name: "b", Stream: b},
		{Name: "out", Stream: out},
	}, 21)
}

func TestTextTerminations(t *testing.T) {
	source := marbles.MustTimeline(marbles.CompleteAt(10), marbles.Pair(0, 1), marbles.Pair(5, 2))
	unary := marbles.Unary[int]{Source: source}
	flags := marbles.MustTimeline(marbles.CompleteAt(2), marbles.Pair(2, false))

	assertGolden(t, "terminations", []Row{
		{Name: "source", Stream: source},
		{Name: "last", Stream: marbles.NewLast[int]().Apply(unary)},
		{Name: "never", Stream: marbles.NewNever[int]().Apply(marbles.Nullary{})},
		{Name: "throw", Stream: marbles.NewThrow[int]().Apply(marbles.Nullary{})},
		{Name: "all", Stream: flags},
	}, 21)
}

func TestTextDense(t *testing.T) {
	dense := marbles.MustTimeline(marbles.ErrorAt(10),
		marbles.Pair(0, 10), marbles.Pair(0.4, 20), marbles.Pair(1, 30), marbles.Pair(9.6, 40))

	assertGolden(t, "dense", []Row{{Name: "dense", Stream: dense}}, 11)
}

func TestTextRejectsNarrowWidth(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Text(&buf, nil, 1))
}

func TestJSON(t *testing.T) {
	source := marbles.MustTimeline(marbles.ErrorAt(8), marbles.Pair(0, 1), marbles.Pair(2.5, 3))
	single := marbles.NewSingle(marbles.NewPending[bool]())

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, []Row{
		{Name: "source", Stream: source},
		{Name: "all", Stream: single},
	}))

	assert.JSONEq(t, `[
		{"name": "source", "marbles": [{"time": 0, "value": 1}, {"time": 2.5, "value": 3}], "termination": {"kind": "error", "time": 8}},
		{"name": "all", "marbles": [], "termination": {"kind": "none"}}
	]`, buf.String())
}
