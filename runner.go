package marbles

// Runner is an operator with its parameter and output types erased. Hosts
// hold runners to offer any operator over any list of streams.
type Runner interface {
	Expression() string
	DocURL() string

	// Run validates the inputs and applies the operator. A
	// *ValidationError means the operator does not apply.
	Run(inputs []Stream) (Stream, error)
}

// Run validates inputs for op and applies it, keeping the output typed.
func Run[P any, Out Stream](op Operator[P, Out], inputs []Stream) (Out, error) {
	params, err := op.Params(inputs)
	if err != nil {
		var zero Out
		return zero, err
	}
	return op.Apply(params), nil
}

// Erase wraps an operator as a Runner.
func Erase[P any, Out Stream](op Operator[P, Out]) Runner {
	return erased[P, Out]{op: op}
}

type erased[P any, Out Stream] struct {
	op Operator[P, Out]
}

func (e erased[P, Out]) Expression() string {
	return e.op.Expression()
}

func (e erased[P, Out]) DocURL() string {
	return e.op.DocURL()
}

func (e erased[P, Out]) Run(inputs []Stream) (Stream, error) {
	out, err := Run(e.op, inputs)
	if err != nil {
		return nil, err
	}
	return out, nil
}
