package tuple

// Return the zero value of the given generic type
func zero[T any]() T {
	var zero T
	return zero
}

// duplicate v through its Copy method when it has one, plain value copy otherwise
func copyOf[T any](v T) T {
	if c, ok := any(v).(Copyable[T]); ok {
		return c.Copy()
	}
	return v
}
