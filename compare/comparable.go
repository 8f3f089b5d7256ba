// Package compare provides equality capabilities for values stored in containers.
package compare

// Comparable is implemented by types that decide their own equality. Containers
// use it instead of == when an element carries fields that should not take part
// in identity (caches, pointers to shared state and so on).
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualFunc returns the equality function of a Comparable type, in the shape
// expected by function-driven containers.
func EqualFunc[T Comparable[T]]() func(a, b T) bool {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}

// Identity returns an equality function that uses the built-in == operator.
func Identity[T comparable]() func(a, b T) bool {
	return func(a, b T) bool {
		return a == b
	}
}
