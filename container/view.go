package container

import (
	"iter"
	"slices"
)

// View is a read-only traversal of a container in one particular Order.
//
// Copy-based views (Ascending, Descending, SideCross, MiddleOut) hold their
// own permuted copy of the elements, made when the view was built. Live views
// (Reverse, Insertion) hold the container itself and see its current state.
//
// Views are immutable; there is no way to add or remove elements through one.
type View[T comparable] struct {
	order  Order
	frozen []T
	source *Container[T]
}

func frozenView[T comparable](order Order, elements []T) *View[T] {
	return &View[T]{
		order:  order,
		frozen: elements,
	}
}

func liveView[T comparable](order Order, c *Container[T]) *View[T] {
	return &View[T]{
		order:  order,
		source: c,
	}
}

// Order returns the traversal order of the view.
func (v *View[T]) Order() Order {
	return v.order
}

// Live reports whether the view reads from the container on every traversal.
func (v *View[T]) Live() bool {
	return v.order.Live()
}

// Size returns the number of elements a traversal started now would yield.
func (v *View[T]) Size() int {
	if !v.Live() {
		return len(v.frozen)
	}

	if v.source == nil {
		return 0
	}

	return len(v.source.elements)
}

// Begin returns a cursor at the first element. On an empty view it is equal to End.
func (v *View[T]) Begin() Cursor[T] {
	return Cursor[T]{
		view:    v,
		pos:     0,
		version: v.sourceVersion(),
	}
}

// End returns the cursor one past the last element.
func (v *View[T]) End() Cursor[T] {
	return Cursor[T]{
		view:    v,
		pos:     v.Size(),
		version: v.sourceVersion(),
	}
}

// Seq returns an iterator over the view. Each call starts a fresh traversal,
// so the sequence can be ranged over any number of times.
//
// For live views, changing the container while the loop is running makes the
// iterator panic with an error wrapping ErrModified. Use Begin and Cursor if
// that needs to be handled as a regular error.
func (v *View[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := v.Begin(); ; cur = cur.Next() {
			if err := cur.Err(); err != nil {
				panic(err)
			}

			if cur.Done() {
				return
			}

			if !yield(v.at(cur.pos)) {
				return
			}
		}
	}
}

// Entries collects the view into a new slice.
func (v *View[T]) Entries() []T {
	return slices.Collect(v.Seq())
}

// String renders the view the same way Container.String does: each element
// followed by one space.
func (v *View[T]) String() string {
	return render(v.Seq())
}

// at returns the element at logical position pos. The caller checks bounds.
func (v *View[T]) at(pos int) T {
	switch v.order {
	case Reverse:
		return v.source.elements[len(v.source.elements)-1-pos]
	case Insertion:
		return v.source.elements[pos]
	default:
		return v.frozen[pos]
	}
}

func (v *View[T]) sourceVersion() uint64 {
	if v.source == nil {
		return 0
	}

	return v.source.version
}
