package tuple

import "golang.org/x/exp/constraints"

// Equal reports whether both fields of p and q are equal
func Equal[A comparable, B comparable](p, q Pair[A, B]) bool {
	return p.First == q.First && p.Second == q.Second
}

// NotEqual is the negation of Equal: true when at least one field differs
func NotEqual[A comparable, B comparable](p, q Pair[A, B]) bool {
	return !Equal(p, q)
}

// Less orders pairs lexicographically, by First and then by Second when the firsts are equivalent
func Less[A constraints.Ordered, B constraints.Ordered](p, q Pair[A, B]) bool {
	return p.First < q.First || (!(q.First < p.First) && p.Second < q.Second)
}

func Greater[A constraints.Ordered, B constraints.Ordered](p, q Pair[A, B]) bool {
	return p.First > q.First || (!(q.First > p.First) && p.Second > q.Second)
}

func LessOrEqual[A constraints.Ordered, B constraints.Ordered](p, q Pair[A, B]) bool {
	return !Greater(p, q)
}

func GreaterOrEqual[A constraints.Ordered, B constraints.Ordered](p, q Pair[A, B]) bool {
	return !Less(p, q)
}

// Compare returns -1, 0 or +1 when p is less than, equivalent to or greater than q.
// NaN fields are equivalent to everything.
func Compare[A constraints.Ordered, B constraints.Ordered](p, q Pair[A, B]) int {
	return CompareFunc(p, q, compareOrdered[A], compareOrdered[B])
}

// EqualFunc is Equal for element types without ==
func EqualFunc[A any, B any](p, q Pair[A, B], eqFirst func(A, A) bool, eqSecond func(B, B) bool) bool {
	return eqFirst(p.First, q.First) && eqSecond(p.Second, q.Second)
}

// CompareFunc is Compare for element types without built-in ordering
func CompareFunc[A any, B any](p, q Pair[A, B], cmpFirst func(A, A) int, cmpSecond func(B, B) int) int {
	if c := cmpFirst(p.First, q.First); c != 0 {
		return c
	}
	return cmpSecond(p.Second, q.Second)
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
