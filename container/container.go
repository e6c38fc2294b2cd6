package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Container is an insertion-ordered collection of comparable values.
// Duplicates are allowed. The zero value is an empty container ready to use.
//
// A Container is not safe for concurrent use.
type Container[T comparable] struct {
	elements []T

	// version changes on every successful mutation. Live views compare it
	// against the value captured when a traversal began.
	version uint64
}

// New creates a container holding the given elements in order.
func New[T comparable](elements ...T) *Container[T] {
	c := &Container[T]{}
	c.AddAll(elements...)

	return c
}

// Add appends element to the end of the container.
func (c *Container[T]) Add(element T) {
	c.elements = append(c.elements, element)
	c.version++
}

// AddAll appends every element, in order.
func (c *Container[T]) AddAll(elements ...T) {
	if len(elements) == 0 {
		return
	}

	c.elements = append(c.elements, elements...)
	c.version++
}

// Remove deletes every element equal to element. If nothing matches it
// returns an error wrapping ErrNotFound and the container is left untouched.
func (c *Container[T]) Remove(element T) error {
	if !slices.Contains(c.elements, element) {
		return fmt.Errorf("%w: %v", ErrNotFound, element)
	}

	c.elements = slices.DeleteFunc(c.elements, func(e T) bool {
		return e == element
	})
	c.version++

	return nil
}

// Contains reports whether at least one element equals element.
func (c *Container[T]) Contains(element T) bool {
	return slices.Contains(c.elements, element)
}

// Clear removes all elements.
func (c *Container[T]) Clear() {
	if len(c.elements) == 0 {
		return
	}

	clear(c.elements)
	c.elements = c.elements[:0]
	c.version++
}

// Size returns the number of elements currently stored.
func (c *Container[T]) Size() int {
	return len(c.elements)
}

// Elements returns a copy of the contents in insertion order. Changing the
// returned slice does not affect the container.
func (c *Container[T]) Elements() []T {
	return slices.Clone(c.elements)
}

// String renders every element followed by a single space, e.g. "7 15 6 ".
// An empty container renders as "".
func (c *Container[T]) String() string {
	return render(slices.Values(c.elements))
}

// render writes each value in fmt's default format followed by one space.
// The trailing space after the last value is intentional.
func render[T any](seq iter.Seq[T]) string {
	var sb strings.Builder

	for v := range seq {
		_, _ = fmt.Fprint(&sb, v)
		sb.WriteByte(' ')
	}

	return sb.String()
}
