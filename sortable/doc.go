// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use with the ordered views in
// [github.com/amp-labs/amp-container/container].
//
// # Overview
//
// The sortable package defines the [Sortable] interface and ready-to-use
// implementations for common primitive types: [Int], [Float] and [String],
// plus [Natural], a string type that orders embedded numbers by value
// ("file2" before "file10").
//
// The Sortable interface extends [github.com/amp-labs/amp-container/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
//	c := container.New[sortable.Natural]("img12", "img2", "img1")
//
//	for val := range container.SortableAscendingOrder(c).Seq() {
//	    fmt.Println(val) // img1, img2, img12
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t == other
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    return t.Priority < other.Priority
//	}
//
// LessThan must describe a strict weak ordering. Values for which neither
// a.LessThan(b) nor b.LessThan(a) holds are treated as ties; the ordered
// views sort stably, so ties keep their insertion order.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
