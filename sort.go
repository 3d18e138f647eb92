package tuple

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sort orders the pairs lexicographically, equivalent pairs keep their relative order
func Sort[A constraints.Ordered, B constraints.Ordered](pairs []Pair[A, B]) {
	slices.SortStableFunc(pairs, Compare[A, B])
}

// SortFunc orders the pairs lexicographically with the comparison functions of c
func SortFunc[A any, B any](pairs []Pair[A, B], c Comparator[A, B]) {
	slices.SortStableFunc(pairs, c.Compare)
}
