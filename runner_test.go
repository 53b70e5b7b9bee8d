package marbles

import (
	"errors"
	"testing"
)

func TestParamsArity(t *testing.T) {
	a := ints(None(), Pair(1, 1))
	b := ints(None(), Pair(2, 2))

	if _, err := NewNever[int]().Params([]Stream{a}); !errors.Is(err, ErrArity) {
		t.Errorf("nullary with one input: expected ErrArity, got %v", err)
	}
	if _, err := NewSkip[int](1).Params(nil); !errors.Is(err, ErrArity) {
		t.Errorf("unary without input: expected ErrArity, got %v", err)
	}
	if _, err := NewSkip[int](1).Params([]Stream{a, b}); !errors.Is(err, ErrArity) {
		t.Errorf("unary with two inputs: expected ErrArity, got %v", err)
	}

	p, err := NewMerge[int]().Params([]Stream{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Sources) != 2 || !p.Sources[1].Equal(b) {
		t.Errorf("unexpected params %v", p)
	}
	if _, err := NewMerge[int]().Params(nil); err != nil {
		t.Errorf("variadic operators accept no input: %v", err)
	}
}

func TestParamsInputType(t *testing.T) {
	words := MustTimeline(None(), Pair(1, "a"))
	single := NewSingle(NewSuccess(1, 1))

	tests := []struct {
		name   string
		inputs []Stream
		run    func([]Stream) error
		index  int
	}{
		{"unary element type", []Stream{words}, func(in []Stream) error {
			_, err := NewSkip[int](1).Params(in)
			return err
		}, 0},
		{"unary single", []Stream{single}, func(in []Stream) error {
			_, err := NewLast[int]().Params(in)
			return err
		}, 0},
		{"variadic element type", []Stream{ints(None()), ints(None()), words}, func(in []Stream) error {
			_, err := NewMerge[int]().Params(in)
			return err
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(tt.inputs)
			if !errors.Is(err, ErrInputType) {
				t.Fatalf("expected ErrInputType, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Index != tt.index {
				t.Errorf("expected index %d, got %v", tt.index, err)
			}
		})
	}
}

func TestRunKeepsOutputTyped(t *testing.T) {
	source := ints(CompleteAt(10), Pair(0, 1), Pair(5, 2))

	single, err := Run[Unary[int], Single[int]](NewLast[int](), []Stream{source})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single.Result() != NewSuccess(5, 2) {
		t.Errorf("unexpected result %v", single)
	}

	_, err = Run[Unary[int], Single[int]](NewLast[int](), nil)
	if !IsValidation(err) {
		t.Errorf("expected a validation failure, got %v", err)
	}
}

func TestErasedRunner(t *testing.T) {
	source := ints(CompleteAt(10), Pair(0, 1), Pair(5, 2))
	runners := []Runner{
		Erase[Unary[int], Timeline[int]](NewSkip[int](1)),
		Erase[Unary[int], Single[int]](NewLast[int]()),
		Erase[Variadic[int], Timeline[int]](NewMerge[int]()),
	}

	for _, runner := range runners {
		out, err := runner.Run([]Stream{source})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", runner.Expression(), err)
		}
		if out == nil || out.Terminal() == None() {
			t.Errorf("%s: unexpected output %v", runner.Expression(), out)
		}
		if runner.DocURL() == "" {
			t.Errorf("%s: missing doc URL", runner.Expression())
		}
	}

	// A host offers only the operators applicable to its inputs.
	var applicable []string
	inputs := []Stream{source, source}
	for _, runner := range runners {
		if _, err := runner.Run(inputs); err == nil {
			applicable = append(applicable, runner.Expression())
		} else if !IsValidation(err) {
			t.Fatalf("unexpected failure %v", err)
		}
	}
	if len(applicable) != 1 || applicable[0] != "merge" {
		t.Errorf("expected only merge to apply, got %v", applicable)
	}

	out, err := runners[0].Run(nil)
	if out != nil || err == nil {
		t.Errorf("expected nil output and an error, got %v, %v", out, err)
	}
}
