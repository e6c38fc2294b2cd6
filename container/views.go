package container

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-container/compare"
	"github.com/amp-labs/amp-container/sortable"
)

// SortableElement is the constraint for elements that define their own
// ordering through sortable.Sortable and can also be stored in a Container.
type SortableElement[T any] interface {
	comparable
	sortable.Sortable[T]
}

// AscendingOrder returns a copy-based view sorted smallest first.
// Equal elements keep their insertion order.
func AscendingOrder[T cmp.Ordered](c *Container[T]) *View[T] {
	return orderedView(c, Ascending, cmp.Compare[T])
}

// DescendingOrder returns a copy-based view sorted largest first.
// Equal elements keep their insertion order.
func DescendingOrder[T cmp.Ordered](c *Container[T]) *View[T] {
	return orderedView(c, Descending, cmp.Compare[T])
}

// SideCrossOrder returns a copy-based view alternating between the smallest
// and the largest remaining element: for 1 2 6 7 15 it yields 1 15 2 7 6.
func SideCrossOrder[T cmp.Ordered](c *Container[T]) *View[T] {
	return orderedView(c, SideCross, cmp.Compare[T])
}

// MiddleOutOrder returns a copy-based view that starts at the sorted median
// and expands outward, left before right: for 1 2 6 7 15 it yields 6 2 7 1 15.
// With an even number of elements the left of the two middle elements comes first.
func MiddleOutOrder[T cmp.Ordered](c *Container[T]) *View[T] {
	return orderedView(c, MiddleOut, cmp.Compare[T])
}

// ReverseOrder returns a live view yielding the most recently added element first.
//
// The view keeps a reference to c rather than a copy. Elements added or
// removed after the view was built show up in later traversals; changes made
// during a traversal are reported as ErrModified.
func ReverseOrder[T comparable](c *Container[T]) *View[T] {
	return liveView(Reverse, c)
}

// InsertionOrder returns a live view yielding elements in the order they were
// added. Like ReverseOrder it references c instead of copying it.
func InsertionOrder[T comparable](c *Container[T]) *View[T] {
	return liveView(Insertion, c)
}

// SortableAscendingOrder is AscendingOrder for types ordered by LessThan.
func SortableAscendingOrder[T SortableElement[T]](c *Container[T]) *View[T] {
	return orderedView(c, Ascending, sortable.Compare[T])
}

// SortableDescendingOrder is DescendingOrder for types ordered by LessThan.
func SortableDescendingOrder[T SortableElement[T]](c *Container[T]) *View[T] {
	return orderedView(c, Descending, sortable.Compare[T])
}

// SortableSideCrossOrder is SideCrossOrder for types ordered by LessThan.
func SortableSideCrossOrder[T SortableElement[T]](c *Container[T]) *View[T] {
	return orderedView(c, SideCross, sortable.Compare[T])
}

// SortableMiddleOutOrder is MiddleOutOrder for types ordered by LessThan.
func SortableMiddleOutOrder[T SortableElement[T]](c *Container[T]) *View[T] {
	return orderedView(c, MiddleOut, sortable.Compare[T])
}

// NewView builds the view for the given order.
func NewView[T cmp.Ordered](c *Container[T], order Order) (*View[T], error) {
	return newView(c, order, cmp.Compare[T])
}

// NewSortableView builds the view for the given order using the elements' LessThan.
func NewSortableView[T SortableElement[T]](c *Container[T], order Order) (*View[T], error) {
	return newView(c, order, sortable.Compare[T])
}

func newView[T comparable](c *Container[T], order Order, compareFn compare.Func[T]) (*View[T], error) {
	switch {
	case order.Ordered():
		return orderedView(c, order, compareFn), nil
	case order.Live():
		return liveView(order, c), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, order)
	}
}

// orderedView builds one of the four copy-based views.
func orderedView[T comparable](c *Container[T], order Order, compareFn compare.Func[T]) *View[T] {
	switch order {
	case Descending:
		return frozenView(order, sortedCopy(c, compare.Reverse(compareFn)))
	case SideCross:
		return frozenView(order, sideCross(sortedCopy(c, compareFn)))
	case MiddleOut:
		return frozenView(order, middleOut(sortedCopy(c, compareFn)))
	default:
		return frozenView(Ascending, sortedCopy(c, compareFn))
	}
}
