package marbles

import (
	"fmt"
	"strings"
)

// Distinct removes repeated values from a timeline.
type Distinct[T, K comparable] struct {
	keyFunc func(T) K
	name    string
	label   string
	window  float64
}

// NewDistinct creates an operator that drops every event whose value was
// already let through.
func NewDistinct[T comparable]() *Distinct[T, T] {
	return NewDistinctBy("", func(v T) T { return v })
}

// NewDistinctBy creates a distinct operator comparing the keys extracted
// by keyFunc instead of the values. label names keyFunc in the expression.
//
// Example:
//
//	// Keep one value per parity.
//	parity := marbles.NewDistinctBy("parity", func(n int) int { return n % 2 })
func NewDistinctBy[T, K comparable](label string, keyFunc func(T) K) *Distinct[T, K] {
	return &Distinct[T, K]{
		keyFunc: keyFunc,
		name:    "distinct",
		label:   label,
	}
}

// WithWindow makes a key forgettable: a value passes again once window
// time units have elapsed since its key last passed. A non-positive window
// remembers keys forever.
func (d *Distinct[T, K]) WithWindow(window float64) *Distinct[T, K] {
	d.window = max(window, 0)
	return d
}

func (d *Distinct[T, K]) Params(inputs []Stream) (Unary[T], error) {
	return unaryParams[T](d.Expression(), inputs)
}

func (d *Distinct[T, K]) Apply(p Unary[T]) Timeline[T] {
	seen := make(map[K]float64)
	var out []Event[T]
	for _, e := range p.Source.events {
		key := d.keyFunc(e.Value)
		if at, ok := seen[key]; ok && (d.window == 0 || e.Time-at < d.window) {
			continue
		}
		seen[key] = e.Time
		out = append(out, e)
	}
	return Timeline[T]{events: out, termination: p.Source.termination}
}

func (d *Distinct[T, K]) Expression() string {
	var args []string
	if d.label != "" {
		args = append(args, d.label)
	}
	if d.window > 0 {
		args = append(args, formatTime(d.window))
	}
	if len(args) == 0 {
		return d.name
	}
	return fmt.Sprintf("%s(%s)", d.name, strings.Join(args, ", "))
}

func (*Distinct[T, K]) DocURL() string {
	return DocURLPrefix + "distinct.html"
}
