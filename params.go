package marbles

// Nullary is the parameter object of operators taking no input.
type Nullary struct{}

// Unary is the parameter object of operators taking exactly one timeline.
type Unary[T comparable] struct {
	Source Timeline[T]
}

// Variadic is the parameter object of operators taking any number of
// timelines of the same element type.
type Variadic[T comparable] struct {
	Sources []Timeline[T]
}

// Sources is a shorthand for building Variadic parameters.
func Sources[T comparable](timelines ...Timeline[T]) Variadic[T] {
	return Variadic[T]{Sources: timelines}
}

func nullaryParams(expression string, inputs []Stream) (Nullary, error) {
	if len(inputs) != 0 {
		return Nullary{}, &ValidationError{Err: ErrArity, Expression: expression, Want: "0", Got: len(inputs), Index: -1}
	}
	return Nullary{}, nil
}

func unaryParams[T comparable](expression string, inputs []Stream) (Unary[T], error) {
	if len(inputs) != 1 {
		return Unary[T]{}, &ValidationError{Err: ErrArity, Expression: expression, Want: "1", Got: len(inputs), Index: -1}
	}
	source, ok := inputs[0].(Timeline[T])
	if !ok {
		return Unary[T]{}, &ValidationError{Err: ErrInputType, Expression: expression, Want: "1", Got: 1, Index: 0}
	}
	return Unary[T]{Source: source}, nil
}

func variadicParams[T comparable](expression string, inputs []Stream) (Variadic[T], error) {
	sources := make([]Timeline[T], len(inputs))
	for i, in := range inputs {
		source, ok := in.(Timeline[T])
		if !ok {
			return Variadic[T]{}, &ValidationError{Err: ErrInputType, Expression: expression, Want: "any", Got: len(inputs), Index: i}
		}
		sources[i] = source
	}
	return Variadic[T]{Sources: sources}, nil
}
