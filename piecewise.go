package tuple

import "github.com/pkg/errors"

const (
	FieldFirst  = "first"
	FieldSecond = "second"
)

// Piecewise constructs each field in place from its own constructor, the first field is built first
func Piecewise[A any, B any](newFirst func() A, newSecond func() B) Pair[A, B] {
	var p Pair[A, B]
	p.First = newFirst()
	p.Second = newSecond()
	return p
}

// PiecewiseWith forwards x to the constructor of the first field and y to the constructor of the second.
// Use a struct or a Pair as the argument to forward several values to one constructor.
func PiecewiseWith[A any, B any, X any, Y any](newFirst func(X) A, x X, newSecond func(Y) B, y Y) Pair[A, B] {
	var p Pair[A, B]
	p.First = newFirst(x)
	p.Second = newSecond(y)
	return p
}

// TryPiecewise is Piecewise for constructors that can fail. The second constructor is not
// called when the first one fails, the returned error is an ErrConstruction naming the field.
func TryPiecewise[A any, B any](newFirst func() (A, error), newSecond func() (B, error)) (Pair[A, B], error) {
	var p Pair[A, B]
	var err error
	if p.First, err = newFirst(); err != nil {
		return zero[Pair[A, B]](), errors.WithStack(NewErrConstruction(FieldFirst, err))
	}
	if p.Second, err = newSecond(); err != nil {
		return zero[Pair[A, B]](), errors.WithStack(NewErrConstruction(FieldSecond, err))
	}
	return p, nil
}
