package tuple

import "golang.org/x/exp/constraints"

// Mode selects the semantics of NotEqual, LessOrEqual and GreaterOrEqual on a Comparator
type Mode int

const (
	// Lexicographic derives every predicate from one lexicographic order:
	// NotEqual is !Equal, LessOrEqual is !Greater and GreaterOrEqual is !Less
	Lexicographic Mode = iota

	// Literal compares the fields independently:
	// NotEqual needs both fields to differ, LessOrEqual and GreaterOrEqual hold when either field does.
	// These are not complements of Equal, Greater and Less and do not form a total order.
	Literal
)

func (m Mode) String() string {
	switch m {
	case Lexicographic:
		return "lexicographic"
	case Literal:
		return "literal"
	}
	return "unknown"
}

// Configuration for comparing pairs
type Comparator[A any, B any] struct {
	// Semantics of NotEqual, LessOrEqual and GreaterOrEqual, defaults to Lexicographic
	Mode Mode

	// Compares two first fields, returns a negative number, zero or a positive number
	CompareFirst func(a, b A) int

	// Compares two second fields, returns a negative number, zero or a positive number
	CompareSecond func(a, b B) int
}

// Create a comparator for pairs of ordered types
func OrderedComparator[A constraints.Ordered, B constraints.Ordered](mode Mode) Comparator[A, B] {
	return Comparator[A, B]{
		Mode:          mode,
		CompareFirst:  compareOrdered[A],
		CompareSecond: compareOrdered[B],
	}
}

func (c Comparator[A, B]) Equal(p, q Pair[A, B]) bool {
	return c.CompareFirst(p.First, q.First) == 0 && c.CompareSecond(p.Second, q.Second) == 0
}

func (c Comparator[A, B]) NotEqual(p, q Pair[A, B]) bool {
	if c.Mode == Literal {
		return c.CompareFirst(p.First, q.First) != 0 && c.CompareSecond(p.Second, q.Second) != 0
	}
	return !c.Equal(p, q)
}

func (c Comparator[A, B]) Less(p, q Pair[A, B]) bool {
	return c.Compare(p, q) < 0
}

func (c Comparator[A, B]) Greater(p, q Pair[A, B]) bool {
	return c.Compare(p, q) > 0
}

func (c Comparator[A, B]) LessOrEqual(p, q Pair[A, B]) bool {
	if c.Mode == Literal {
		return c.CompareFirst(p.First, q.First) <= 0 || c.CompareSecond(p.Second, q.Second) <= 0
	}
	return !c.Greater(p, q)
}

func (c Comparator[A, B]) GreaterOrEqual(p, q Pair[A, B]) bool {
	if c.Mode == Literal {
		return c.CompareFirst(p.First, q.First) >= 0 || c.CompareSecond(p.Second, q.Second) >= 0
	}
	return !c.Less(p, q)
}

// Compare is lexicographic in every mode
func (c Comparator[A, B]) Compare(p, q Pair[A, B]) int {
	return CompareFunc(p, q, c.CompareFirst, c.CompareSecond)
}
