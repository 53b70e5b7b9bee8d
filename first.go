package marbles

// First reduces a timeline to its earliest value.
type First[T comparable] struct {
	name string
}

// NewFirst creates an operator that succeeds with the first event, at its
// own time, however the source terminates afterwards. Without events the
// outcome follows the termination: None stays None, Complete(t) and
// Error(t) both give Error(t).
func NewFirst[T comparable]() *First[T] {
	return &First[T]{name: "first"}
}

func (f *First[T]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](f.Expression(), inputs)
}

func (*First[T]) Apply(p Unary[T]) Single[T] {
	if len(p.Source.events) > 0 {
		first := p.Source.events[0]
		return NewSingle(NewSuccess(first.Time, first.Value))
	}
	return NewSingle(MatchTermination(p.Source.termination,
		NewPending[T],
		NewFailure[T],
		NewFailure[T],
	))
}

func (f *First[T]) Expression() string {
	return f.name
}

func (*First[T]) DocURL() string {
	return DocURLPrefix + "first.html"
}
