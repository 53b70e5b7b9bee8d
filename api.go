// Package marbles provides a deterministic simulation engine for reactive
// stream operators, computing how operators such as merge, combineLatest,
// skip, last or all transform finite marble diagrams.
//
// The core abstraction is the Timeline: an ordered set of timestamped
// events plus a Termination, recorded on a bounded simulated time axis
// [0, TimelineDuration]. Operators are pure functions over timelines. They
// never mutate their inputs and always return a freshly built value.
//
// Every operator follows the same two-phase contract. Params validates a
// type-erased list of input streams into a typed parameter object, failing
// with a *ValidationError when the operator does not apply to those inputs.
// Apply then computes the output, which is total for any valid parameters.
//
// Basic usage:
//
//	source := marbles.MustTimeline(marbles.CompleteAt(10),
//		marbles.Event[int]{Time: 0, Value: 1},
//		marbles.Event[int]{Time: 5, Value: 2},
//	)
//
//	// Typed use
//	last := marbles.NewLast[int]()
//	result := last.Apply(marbles.Unary[int]{Source: source})
//	fmt.Println(result) // success(5, 2)
//
//	// Type-erased use, as a host UI would do
//	runner := marbles.Erase[marbles.Unary[int], marbles.Timeline[int]](marbles.NewSkip[int](1))
//	out, err := runner.Run([]marbles.Stream{source})
//	if errors.Is(err, marbles.ErrArity) {
//		// operator not applicable, skip it
//	}
//
// The package provides operators for the common marble categories:
//   - Creation: throw, empty, never, just
//   - Filtering: skip, take, filter, first, last, distinct
//   - Transformation: map, scan
//   - Time-based: debounce, throttle, sample
//   - Combining: merge, combineLatest, zip, concat
//   - Error handling: retry
//   - Conditional and aggregate: all, any, contains, reduce
package marbles

// TimelineDuration bounds the simulated time axis. Every event and
// termination time lies in [0, TimelineDuration].
const TimelineDuration = 10.0

// DocURLPrefix is the base of operator documentation references.
const DocURLPrefix = "http://reactivex.io/documentation/operators/"

// Operator is the uniform contract shared by every operator regardless of
// its arity or output shape.
//
// P is the operator's typed view over its inputs (Nullary, Unary[T] or
// Variadic[T]) and Out is the produced stream, a Timeline or a Single.
type Operator[P any, Out Stream] interface {
	// Params validates the inputs and builds the typed parameters.
	// It returns a *ValidationError when the operator is not applicable.
	Params(inputs []Stream) (P, error)

	// Apply computes the output. It is pure and never fails for
	// parameters returned by Params.
	Apply(params P) Out

	// Expression renders the operator and its configuration, e.g. "skip(2)".
	Expression() string

	// DocURL returns a documentation reference, or "" when there is none.
	DocURL() string
}

// Stream is the type-erased view shared by timelines and single results.
// Hosts use it to pass heterogeneous inputs to operators and to render
// outputs without knowing their element type.
type Stream interface {
	// Marbles returns the stream's values in time order.
	Marbles() []Marble

	// Terminal returns how the stream terminates.
	Terminal() Termination

	String() string
}

// Marble is a type-erased event, used for rendering.
type Marble struct {
	Value any
	Time  float64
}
