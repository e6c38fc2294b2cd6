// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-container/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparison derived from LessThan. It can be passed
// anywhere a compare.Func is expected.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// CompareFunc returns Compare as a compare.Func.
func CompareFunc[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}
