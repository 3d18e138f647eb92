package tuple

// Set replaces both fields and returns p for chaining
func (p *Pair[A, B]) Set(first A, second B) *Pair[A, B] {
	p.First = first
	p.Second = second
	return p
}

// Assign copies the fields of src into p, assigning a pair to itself is a no-op
func (p *Pair[A, B]) Assign(src *Pair[A, B]) *Pair[A, B] {
	if p == src {
		return p
	}
	*p = src.Clone()
	return p
}

// MoveAssign transfers the fields of src into p and leaves src as the zero pair.
// Moving a pair into itself is a no-op.
func (p *Pair[A, B]) MoveAssign(src *Pair[A, B]) *Pair[A, B] {
	if p == src {
		return p
	}
	*p = Move(src)
	return p
}

// AssignConvert copies src into dst converting each field, dst is returned for chaining
func AssignConvert[A any, B any, T any, U any](dst *Pair[A, B], src Pair[T, U], toFirst func(T) A, toSecond func(U) B) *Pair[A, B] {
	*dst = Convert(src, toFirst, toSecond)
	return dst
}

// MoveAssignConvert transfers src into dst converting each field, src is left as the zero pair
func MoveAssignConvert[A any, B any, T any, U any](dst *Pair[A, B], src *Pair[T, U], toFirst func(T) A, toSecond func(U) B) *Pair[A, B] {
	*dst = MoveConvert(src, toFirst, toSecond)
	return dst
}
