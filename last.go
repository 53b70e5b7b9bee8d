package marbles

// Last reduces a timeline to its final value.
type Last[T comparable] struct {
	name string
}

// NewLast creates an operator whose outcome depends on how the source
// terminates:
//   - None: the outcome is not known yet (None).
//   - Complete with events: Success with the chronologically last event's
//     value, stamped at that event's own time.
//   - Complete without events: Error at the completion time, as there is
//     no last element.
//   - Error: Error at the failure time, whatever was emitted before.
func NewLast[T comparable]() *Last[T] {
	return &Last[T]{name: "last"}
}

func (l *Last[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](l.Expression(), inputs)
}

func (*Last[T]) Apply(p Unary[T]) Single[T] {
	source := p.Source
	return NewSingle(MatchTermination(source.termination,
		NewPending[T],
		func(time float64) Result[T] {
			if len(source.events) == 0 {
				return NewFailure[T](time)
			}
			last := source.events[len(source.events)-1]
			return NewSuccess(last.Time, last.Value)
		},
		NewFailure[T],
	))
}

func (l *Last[T]) Expression() string {
	return l.name
}

func (*Last[T]) DocURL() string {
	return DocURLPrefix + "last.html"
}
