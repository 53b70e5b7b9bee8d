package testing

import (
	"math/rand"
	"testing"

	"github.com/zoobzio/marbles"
)

func TestApply(t *testing.T) {
	source := Ints(t, marbles.CompleteAt(5), marbles.Pair(1, 1), marbles.Pair(2, 2))

	out := Apply[marbles.Timeline[int]](t, marbles.Erase[marbles.Unary[int], marbles.Timeline[int]](marbles.NewSkip[int](1)), source)
	AssertValues(t, out, 2)

	single := Apply[marbles.Single[int]](t, marbles.Erase[marbles.Unary[int], marbles.Single[int]](marbles.NewLast[int]()), source)
	AssertResult(t, single, marbles.NewSuccess(2, 2))
}

func TestAssertSkipped(t *testing.T) {
	source := Ints(t, marbles.None())
	AssertSkipped(t, marbles.Erase[marbles.Nullary, marbles.Timeline[int]](marbles.NewNever[int]()), source)
}

func TestRandomIntsAreWellFormed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		AssertWellFormed(t, RandomInts(rng, 8))
	}
}
