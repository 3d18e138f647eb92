package tuple

import "golang.org/x/exp/constraints"

// Number is any type that Go converts to and from every other Number
type Number interface {
	constraints.Integer | constraints.Float
}

// Convert builds a pair of another type from src by converting each field independently
func Convert[A any, B any, T any, U any](src Pair[T, U], toFirst func(T) A, toSecond func(U) B) Pair[A, B] {
	return NewPair(toFirst(src.First), toSecond(src.Second))
}

// ConvertNumeric converts a numeric pair element-wise using Go's numeric conversions.
// Widening conversions (int to int64, float32 to float64) preserve the values exactly.
func ConvertNumeric[A Number, B Number, T Number, U Number](src Pair[T, U]) Pair[A, B] {
	return NewPair(A(src.First), B(src.Second))
}

// Identity is the conversion of a field that keeps its type
func Identity[T any](v T) T {
	return v
}
