package sortable

import (
	"math"

	"facette.io/natsort"
)

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Float is a sortable wrapper type for float64. NaN sorts before every other
// value, matching cmp.Compare, so that LessThan stays a strict weak ordering.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	return float64(f) == float64(other)
}

func (f Float) LessThan(other Float) bool {
	a, b := float64(f), float64(other)

	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}

	return a < b
}

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Natural is a string that sorts in natural order: runs of digits compare
// by numeric value, so "v2" < "v10". Equality is still exact byte equality.
// Strings that only differ in leading zeros ("x1", "x01") fall back to
// byte order so that LessThan stays strict.
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

func (n Natural) LessThan(other Natural) bool {
	a, b := string(n), string(other)
	if a == b {
		return false
	}

	// natsort.Compare reports true for numerically equal strings in both directions.
	ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)
	if ab == ba {
		return a < b
	}

	return ab
}
