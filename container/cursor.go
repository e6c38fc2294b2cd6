package container

import "fmt"

// Cursor is a forward position inside a View. Cursors are small values;
// Next returns a new cursor rather than moving the receiver.
//
//	for cur := view.Begin(); !cur.Done(); cur = cur.Next() {
//	    v, err := cur.Value()
//	    ...
//	}
type Cursor[T comparable] struct {
	view    *View[T]
	pos     int
	version uint64
}

// Done reports whether the cursor is at or past the end of its view.
func (c Cursor[T]) Done() bool {
	return c.view == nil || c.pos >= c.view.Size()
}

// Next returns the cursor for the following position. Advancing a cursor
// that is already done returns it unchanged.
func (c Cursor[T]) Next() Cursor[T] {
	if c.Done() {
		return c
	}

	c.pos++

	return c
}

// Position is the zero-based offset of the cursor within its view.
func (c Cursor[T]) Position() int {
	return c.pos
}

// Err returns an error wrapping ErrModified if the cursor belongs to a live
// view whose container changed after the cursor was obtained.
func (c Cursor[T]) Err() error {
	if c.view == nil || !c.view.Live() {
		return nil
	}

	if c.view.sourceVersion() != c.version {
		return fmt.Errorf("%w: %s view", ErrModified, c.view.order)
	}

	return nil
}

// Value returns the element under the cursor. It fails with ErrOutOfRange
// when the cursor is done, and with ErrModified as described on Err.
func (c Cursor[T]) Value() (T, error) {
	var zero T

	if err := c.Err(); err != nil {
		return zero, err
	}

	if c.view == nil {
		return zero, fmt.Errorf("%w: cursor has no view", ErrOutOfRange)
	}

	if size := c.view.Size(); c.pos < 0 || c.pos >= size {
		return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, c.pos, size)
	}

	return c.view.at(c.pos), nil
}

// Equal reports whether both cursors point at the same position of the same view.
// Cursors from different views are never equal, even if those views have the
// same order and contents.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.view == other.view && c.pos == other.pos
}
