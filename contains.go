package marbles

import "fmt"

// Contains tells whether a timeline emits a given value.
type Contains[T comparable] struct {
	value T
	name  string
}

// NewContains creates an operator that behaves as any(v == value).
func NewContains[T comparable](value T) *Contains[T] {
	return &Contains[T]{
		value: value,
		name:  "contains",
	}
}

func (c *Contains[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](c.Expression(), inputs)
}

func (c *Contains[T]) Apply(p Unary[T]) Single[bool] {
	return NewSingle(exists(p.Source, func(v T) bool { return v == c.value }))
}

func (c *Contains[T]) Expression() string {
	return fmt.Sprintf("%s(%v)", c.name, c.value)
}

func (*Contains[T]) DocURL() string {
	return DocURLPrefix + "contains.html"
}
