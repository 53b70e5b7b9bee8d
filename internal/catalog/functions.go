package catalog

import (
	"math"
	"sort"
)

// Predicates usable in filter, all and any.
var predicates = map[string]func(int) bool{
	"even":     func(n int) bool { return n%2 == 0 },
	"odd":      func(n int) bool { return n%2 != 0 },
	"positive": func(n int) bool { return n > 0 },
	"negative": func(n int) bool { return n < 0 },
	"zero":     func(n int) bool { return n == 0 },
}

// Transforms usable in map.
var transforms = map[string]func(int) int{
	"double":    func(n int) int { return 2 * n },
	"negate":    func(n int) int { return -n },
	"square":    func(n int) int { return n * n },
	"increment": func(n int) int { return n + 1 },
}

// Combiners usable in combineLatest, zip, scan and reduce.
var combiners = map[string]func([]int) int{
	"sum": func(values []int) int {
		total := 0
		for _, v := range values {
			total += v
		}
		return total
	},
	"product": func(values []int) int {
		total := 1
		for _, v := range values {
			total *= v
		}
		return total
	},
	"max": func(values []int) int {
		best := values[0]
		for _, v := range values[1:] {
			best = max(best, v)
		}
		return best
	},
	"min": func(values []int) int {
		best := values[0]
		for _, v := range values[1:] {
			best = min(best, v)
		}
		return best
	},
}

// sentinels are the combiners whose seed is no value a fold could produce:
// reducing an empty source with them fails rather than yielding the seed.
var sentinels = map[string]bool{
	"max": true,
	"min": true,
}

// seeds are the identity elements of the combiners, used to start scan
// and reduce.
var seeds = map[string]int{
	"sum":     0,
	"product": 1,
	"max":     math.MinInt,
	"min":     math.MaxInt,
}

// Predicates lists the predicate names, sorted.
func Predicates() []string { return keys(predicates) }

// Transforms lists the map function names, sorted.
func Transforms() []string { return keys(transforms) }

// Combiners lists the combiner names, sorted.
func Combiners() []string { return keys(combiners) }

func keys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
