// Package container provides Container, an insertion-ordered collection of
// comparable values, and a family of read-only views that traverse its
// contents in different orders without touching the underlying data.
//
// # Views
//
// Six orders are available, each behind its own constructor:
//
//   - [AscendingOrder]: stable sort, smallest first.
//   - [DescendingOrder]: stable sort, largest first.
//   - [SideCrossOrder]: smallest, largest, second smallest, second largest, ...
//   - [ReverseOrder]: last inserted first.
//   - [InsertionOrder]: insertion order.
//   - [MiddleOutOrder]: the sorted median first, then outward, left before right.
//
// The four ordered constructors require cmp.Ordered elements. Types that
// order themselves through [github.com/amp-labs/amp-container/sortable.Sortable]
// use the Sortable-prefixed variants instead ([SortableAscendingOrder] etc.).
//
// # Copies and live references
//
// Ascending, Descending, SideCross and MiddleOut views copy the container's
// elements when they are built. They never observe later changes.
//
// Reverse and Insertion views keep a reference to the container and read its
// current contents every time they are traversed. Mutating the container in
// the middle of such a traversal is a programming error: cursors report
// [ErrModified] and Seq panics with an error wrapping it.
//
// # Thread Safety
//
// Neither containers nor views are safe for concurrent use. Callers sharing a
// container between goroutines must serialize mutations against traversals of
// live views themselves. Copy-based views may be read concurrently once built.
package container
