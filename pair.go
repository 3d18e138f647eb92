package tuple

// Pair holds exactly two values of independently chosen types.
// The zero value is a valid pair with both fields zero-valued.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Copyable is implemented by element types that own references (slices, maps, pointers)
// and know how to duplicate themselves without sharing state with the original
type Copyable[T any] interface {
	Copy() T
}

// Create a pair with both fields zero-valued
func Zero[A any, B any]() Pair[A, B] {
	return Pair[A, B]{}
}

// Create a pair that takes ownership of the given values
func NewPair[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{
		First:  first,
		Second: second,
	}
}

// MakePair builds a pair from copies of the given values, type parameters are deduced from the call site.
// Values implementing Copyable are duplicated through their Copy method.
func MakePair[A any, B any](first A, second B) Pair[A, B] {
	return NewPair(copyOf(first), copyOf(second))
}

// Clone returns a pair that shares no state with p
func (p Pair[A, B]) Clone() Pair[A, B] {
	return NewPair(copyOf(p.First), copyOf(p.Second))
}

// Copy makes Pair a Copyable element, so nested pairs are cloned too
func (p Pair[A, B]) Copy() Pair[A, B] { return p.Clone() }

// Values unpacks the pair
func (p Pair[A, B]) Values() (A, B) {
	return p.First, p.Second
}

// Swap returns a pair with the fields in reverse order
func Swap[A any, B any](p Pair[A, B]) Pair[B, A] {
	return NewPair(p.Second, p.First)
}

// Move transfers the fields out of src and leaves src as the zero pair
func Move[A any, B any](src *Pair[A, B]) Pair[A, B] {
	moved := *src
	*src = zero[Pair[A, B]]()
	return moved
}

// MoveConvert transfers the fields of src into a pair of another type using the given conversions,
// src is left as the zero pair
func MoveConvert[A any, B any, T any, U any](src *Pair[T, U], toFirst func(T) A, toSecond func(U) B) Pair[A, B] {
	return Convert(Move(src), toFirst, toSecond)
}
