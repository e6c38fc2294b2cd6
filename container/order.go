package container

import (
	"fmt"
	"strings"
)

// Order identifies one of the traversal orders a View can have.
type Order int

const (
	Ascending Order = iota
	Descending
	SideCross
	Reverse
	Insertion
	MiddleOut
)

// String returns the canonical, kebab-case name of the order.
func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case SideCross:
		return "side-cross"
	case Reverse:
		return "reverse"
	case Insertion:
		return "insertion"
	case MiddleOut:
		return "middle-out"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Live reports whether views of this order read the container's current
// contents on every traversal instead of a copy taken at construction.
func (o Order) Live() bool {
	return o == Reverse || o == Insertion
}

// Ordered reports whether the order depends on comparing elements.
func (o Order) Ordered() bool {
	switch o {
	case Ascending, Descending, SideCross, MiddleOut:
		return true
	default:
		return false
	}
}

// Orders returns all orders in canonical sequence.
func Orders() []Order {
	return []Order{Ascending, Descending, SideCross, Reverse, Insertion, MiddleOut}
}

// ParseOrder resolves an order by name. Matching ignores case, dashes,
// underscores and spaces, so "side-cross", "SideCross" and "side_cross" are
// all accepted. "order" and "original" are aliases for Insertion.
func ParseOrder(name string) (Order, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))

	switch key {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	case "sidecross":
		return SideCross, nil
	case "reverse":
		return Reverse, nil
	case "insertion", "order", "original":
		return Insertion, nil
	case "middleout":
		return MiddleOut, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
	}
}
