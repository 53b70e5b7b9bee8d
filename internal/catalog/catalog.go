// Package catalog builds operators over int marbles from textual
// expressions such as "skip(2)", "all(even)" or "combineLatest(sum)".
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zoobzio/marbles"
)

// Entry describes one operator of the catalog.
type Entry struct {
	build   func(args []string) (marbles.Runner, error)
	Name    string
	Usage   string
	Summary string
	Arity   string
}

type (
	unaryTimeline = marbles.Unary[int]
	sources       = marbles.Variadic[int]
	timeline      = marbles.Timeline[int]
)

var entries = map[string]Entry{
	"throw": {Name: "throw", Usage: "throw", Arity: "0", Summary: "fails at time 0",
		build: noArgs(func() marbles.Runner { return marbles.Erase[marbles.Nullary, timeline](marbles.NewThrow[int]()) })},
	"empty": {Name: "empty", Usage: "empty", Arity: "0", Summary: "completes at time 0",
		build: noArgs(func() marbles.Runner { return marbles.Erase[marbles.Nullary, timeline](marbles.NewEmpty[int]()) })},
	"never": {Name: "never", Usage: "never", Arity: "0", Summary: "never emits nor terminates",
		build: noArgs(func() marbles.Runner { return marbles.Erase[marbles.Nullary, timeline](marbles.NewNever[int]()) })},
	"just": {Name: "just", Usage: "just(v, ...)", Arity: "0", Summary: "emits the values at time 0 and completes",
		build: buildJust},
	"skip": {Name: "skip", Usage: "skip(n)", Arity: "1", Summary: "drops the first n events",
		build: withCount(func(n int) marbles.Runner { return marbles.Erase[unaryTimeline, timeline](marbles.NewSkip[int](n)) })},
	"take": {Name: "take", Usage: "take(n)", Arity: "1", Summary: "keeps the first n events, then completes",
		build: withCount(func(n int) marbles.Runner { return marbles.Erase[unaryTimeline, timeline](marbles.NewTake[int](n)) })},
	"filter": {Name: "filter", Usage: "filter(predicate)", Arity: "1", Summary: "keeps events satisfying the predicate",
		build: withPredicate(func(label string, p func(int) bool) marbles.Runner {
			return marbles.Erase[unaryTimeline, timeline](marbles.NewFilter(p).WithLabel(label))
		})},
	"map": {Name: "map", Usage: "map(function)", Arity: "1", Summary: "transforms every value",
		build: buildMap},
	"first": {Name: "first", Usage: "first", Arity: "1", Summary: "the first value",
		build: noArgs(func() marbles.Runner {
			return marbles.Erase[unaryTimeline, marbles.Single[int]](marbles.NewFirst[int]())
		})},
	"last": {Name: "last", Usage: "last", Arity: "1", Summary: "the last value once completed",
		build: noArgs(func() marbles.Runner {
			return marbles.Erase[unaryTimeline, marbles.Single[int]](marbles.NewLast[int]())
		})},
	"all": {Name: "all", Usage: "all(predicate)", Arity: "1", Summary: "whether every value satisfies the predicate",
		build: withPredicate(func(label string, p func(int) bool) marbles.Runner {
			return marbles.Erase[unaryTimeline, marbles.Single[bool]](marbles.NewAll(p).WithLabel(label))
		})},
	"any": {Name: "any", Usage: "any(predicate)", Arity: "1", Summary: "whether some value satisfies the predicate",
		build: withPredicate(func(label string, p func(int) bool) marbles.Runner {
			return marbles.Erase[unaryTimeline, marbles.Single[bool]](marbles.NewAny(p).WithLabel(label))
		})},
	"contains": {Name: "contains", Usage: "contains(v)", Arity: "1", Summary: "whether the value is emitted",
		build: buildContains},
	"retry": {Name: "retry", Usage: "retry(n)", Arity: "1", Summary: "replays a failing source up to n times",
		build: withCount(func(n int) marbles.Runner { return marbles.Erase[unaryTimeline, timeline](marbles.NewRetry[int](n)) })},
	"distinct": {Name: "distinct", Usage: "distinct[(window)]", Arity: "1", Summary: "drops values already emitted, optionally within a time window",
		build: buildDistinct},
	"debounce": {Name: "debounce", Usage: "debounce(duration)", Arity: "1", Summary: "emits a value after a quiet period",
		build: withDuration(func(d float64) marbles.Runner {
			return marbles.Erase[unaryTimeline, timeline](marbles.NewDebounce[int](d))
		})},
	"throttle": {Name: "throttle", Usage: "throttle(duration)", Arity: "1", Summary: "ignores values for a duration after each emission",
		build: withDuration(func(d float64) marbles.Runner {
			return marbles.Erase[unaryTimeline, timeline](marbles.NewThrottle[int](d))
		})},
	"sample": {Name: "sample", Usage: "sample(period)", Arity: "1", Summary: "emits the latest new value every period",
		build: withDuration(func(d float64) marbles.Runner {
			return marbles.Erase[unaryTimeline, timeline](marbles.NewSample[int](d))
		})},
	"scan": {Name: "scan", Usage: "scan(combiner)", Arity: "1", Summary: "emits the running aggregate",
		build: withAggregate(func(label string, seed int, fn marbles.AggregateFunc[int, int]) marbles.Runner {
			return marbles.Erase[unaryTimeline, timeline](marbles.NewScan(label, seed, fn))
		})},
	"reduce": {Name: "reduce", Usage: "reduce(combiner)", Arity: "1", Summary: "the aggregate of every value once completed",
		build: withAggregate(func(label string, seed int, fn marbles.AggregateFunc[int, int]) marbles.Runner {
			reduce := marbles.NewReduce(label, seed, fn)
			if sentinels[label] {
				reduce.RequireValues()
			}
			return marbles.Erase[unaryTimeline, marbles.Single[int]](reduce)
		})},
	"merge": {Name: "merge", Usage: "merge", Arity: "any", Summary: "interleaves the sources",
		build: noArgs(func() marbles.Runner { return marbles.Erase[sources, timeline](marbles.NewMerge[int]()) })},
	"concat": {Name: "concat", Usage: "concat", Arity: "any", Summary: "plays the sources one after the other",
		build: noArgs(func() marbles.Runner { return marbles.Erase[sources, timeline](marbles.NewConcat[int]()) })},
	"combineLatest": {Name: "combineLatest", Usage: "combineLatest(combiner)", Arity: "any", Summary: "combines the latest value of every source",
		build: withCombiner(func(label string, fn func([]int) int) marbles.Runner {
			return marbles.Erase[sources, timeline](marbles.NewCombineLatest(label, fn))
		})},
	"zip": {Name: "zip", Usage: "zip(combiner)", Arity: "any", Summary: "combines the sources' events by position",
		build: withCombiner(func(label string, fn func([]int) int) marbles.Runner {
			return marbles.Erase[sources, timeline](marbles.NewZip(label, fn))
		})},
}

// Entries returns every catalog entry sorted by name.
func Entries() []Entry {
	list := make([]Entry, 0, len(entries))
	for _, e := range entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Parse builds the operator described by expression.
func Parse(expression string) (marbles.Runner, error) {
	name, args, err := split(expression)
	if err != nil {
		return nil, err
	}
	entry, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
	runner, err := entry.build(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Usage, err)
	}
	return runner, nil
}

// split breaks "name(a, b)" into its name and trimmed arguments. A bare
// name has no arguments.
func split(expression string) (string, []string, error) {
	expression = strings.TrimSpace(expression)
	open := strings.IndexByte(expression, '(')
	if open < 0 {
		if expression == "" || strings.ContainsAny(expression, ") ,") {
			return "", nil, fmt.Errorf("%w: %q", ErrSyntax, expression)
		}
		return expression, nil, nil
	}
	if !strings.HasSuffix(expression, ")") || open == 0 {
		return "", nil, fmt.Errorf("%w: %q", ErrSyntax, expression)
	}
	name := strings.TrimSpace(expression[:open])
	inner := strings.TrimSpace(expression[open+1 : len(expression)-1])
	if inner == "" {
		return name, nil, nil
	}
	args := strings.Split(inner, ",")
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
		if args[i] == "" {
			return "", nil, fmt.Errorf("%w: empty argument in %q", ErrSyntax, expression)
		}
	}
	return name, args, nil
}

func expectArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: want %d argument(s), got %d", ErrBadArgument, n, len(args))
	}
	return nil
}

func noArgs(build func() marbles.Runner) func([]string) (marbles.Runner, error) {
	return func(args []string) (marbles.Runner, error) {
		if err := expectArgs(args, 0); err != nil {
			return nil, err
		}
		return build(), nil
	}
}

func withCount(build func(int) marbles.Runner) func([]string) (marbles.Runner, error) {
	return func(args []string) (marbles.Runner, error) {
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: count %q must be a non-negative integer", ErrBadArgument, args[0])
		}
		return build(n), nil
	}
}

func withPredicate(build func(string, func(int) bool) marbles.Runner) func([]string) (marbles.Runner, error) {
	return func(args []string) (marbles.Runner, error) {
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		p, ok := predicates[args[0]]
		if !ok {
			return nil, fmt.Errorf("%w: predicate %q (known: %s)", ErrUnknownFunction, args[0], strings.Join(Predicates(), ", "))
		}
		return build(args[0], p), nil
	}
}

func withCombiner(build func(string, func([]int) int) marbles.Runner) func([]string) (marbles.Runner, error) {
	return func(args []string) (marbles.Runner, error) {
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		fn, ok := combiners[args[0]]
		if !ok {
			return nil, fmt.Errorf("%w: combiner %q (known: %s)", ErrUnknownFunction, args[0], strings.Join(Combiners(), ", "))
		}
		return build(args[0], fn), nil
	}
}

func withDuration(build func(float64) marbles.Runner) func([]string) (marbles.Runner, error) {
	return func(args []string) (marbles.Runner, error) {
		if err := expectArgs(args, 1); err != nil {
			return nil, err
		}
		d, err := duration(args[0])
		if err != nil {
			return nil, err
		}
		return build(d), nil
	}
}

// withAggregate folds with a combiner, starting from its identity.
func withAggregate(build func(string, int, marbles.AggregateFunc[int, int]) marbles.Runner) func([]string) (marbles.Runner, error) {
	return withCombiner(func(label string, fn func([]int) int) marbles.Runner {
		return build(label, seeds[label], func(state, n int) int { return fn([]int{state, n}) })
	})
}

func buildDistinct(args []string) (marbles.Runner, error) {
	distinct := marbles.NewDistinct[int]()
	switch len(args) {
	case 0:
	case 1:
		window, err := duration(args[0])
		if err != nil {
			return nil, err
		}
		distinct.WithWindow(window)
	default:
		return nil, fmt.Errorf("%w: want at most 1 argument, got %d", ErrBadArgument, len(args))
	}
	return marbles.Erase[unaryTimeline, timeline](distinct), nil
}

func duration(arg string) (float64, error) {
	d, err := strconv.ParseFloat(arg, 64)
	if err != nil || !(d >= 0 && d <= marbles.TimelineDuration) {
		return 0, fmt.Errorf("%w: duration %q must be a number in [0, %g]", ErrBadArgument, arg, marbles.TimelineDuration)
	}
	return d, nil
}

func buildMap(args []string) (marbles.Runner, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	fn, ok := transforms[args[0]]
	if !ok {
		return nil, fmt.Errorf("%w: function %q (known: %s)", ErrUnknownFunction, args[0], strings.Join(Transforms(), ", "))
	}
	return marbles.Erase[unaryTimeline, timeline](marbles.NewMapper(args[0], fn)), nil
}

func buildJust(args []string) (marbles.Runner, error) {
	values, err := ints(args)
	if err != nil {
		return nil, err
	}
	return marbles.Erase[marbles.Nullary, timeline](marbles.NewJust(values...)), nil
}

func buildContains(args []string) (marbles.Runner, error) {
	if err := expectArgs(args, 1); err != nil {
		return nil, err
	}
	values, err := ints(args)
	if err != nil {
		return nil, err
	}
	return marbles.Erase[unaryTimeline, marbles.Single[bool]](marbles.NewContains(values[0])), nil
}

func ints(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q must be an integer", ErrBadArgument, a)
		}
		values[i] = v
	}
	return values, nil
}
