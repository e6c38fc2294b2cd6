// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparison. It returns a negative number when a sorts
// before b, a positive number when a sorts after b, and zero otherwise.
// It has the shape expected by slices.SortStableFunc and cmp.Compare.
type Func[T any] func(a, b T) int

// Reverse returns a comparison that orders values the opposite way to f.
// Values that compare equal under f still compare equal, so a stable sort
// using the reversed comparison keeps ties in their original order.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// FromLess builds a three-way comparison out of a strict less-than predicate.
// Two values are considered equal when neither is less than the other.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
