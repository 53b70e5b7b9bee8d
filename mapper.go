package marbles

import "fmt"

// Mapper transforms every event value of a timeline, keeping event times
// and the termination.
type Mapper[In, Out comparable] struct {
	fn    func(In) Out
	name  string
	label string
}

// NewMapper creates a map operator. label names fn in the expression, as
// in "map(double)". Mapped events that end up with the same time and value
// collapse into one.
func NewMapper[In, Out comparable](label string, fn func(In) Out) *Mapper[In, Out] {
	return &Mapper[In, Out]{
		fn:    fn,
		name:  "map",
		label: label,
	}
}

func (m *Mapper[In, Out]) Params(inputs []Stream) (Unary[In], error) {
	return unaryParams[In](m.Expression(), inputs)
}

func (m *Mapper[In, Out]) Apply(p Unary[In]) Timeline[Out] {
	events := make([]Event[Out], len(p.Source.events))
	for i, e := range p.Source.events {
		events[i] = Event[Out]{Time: e.Time, Value: m.fn(e.Value)}
	}
	return newTimeline(p.Source.termination, events)
}

func (m *Mapper[In, Out]) Expression() string {
	return fmt.Sprintf("%s(%s)", m.name, m.label)
}

func (*Mapper[In, Out]) DocURL() string {
	return DocURLPrefix + "map.html"
}
