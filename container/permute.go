package container

import (
	"slices"

	"github.com/amp-labs/amp-container/assert"
	"github.com/amp-labs/amp-container/compare"
)

// snapshot copies the container's elements. A nil container yields nil.
func snapshot[T comparable](c *Container[T]) []T {
	if c == nil {
		return nil
	}

	return slices.Clone(c.elements)
}

// sortedCopy returns a stably sorted copy of the container's elements.
func sortedCopy[T comparable](c *Container[T], compareFn compare.Func[T]) []T {
	elements := snapshot(c)
	slices.SortStableFunc(elements, compareFn)

	return elements
}

// sideCross interleaves a sorted slice from both ends: smallest, largest,
// second smallest, second largest, and so on. An odd-sized input ends with
// its middle element.
func sideCross[T any](sorted []T) []T {
	out := make([]T, 0, len(sorted))

	for left, right := 0, len(sorted)-1; left <= right; left, right = left+1, right-1 {
		if left == right {
			out = append(out, sorted[left])

			break
		}

		out = append(out, sorted[left], sorted[right])
	}

	assert.Len(out, len(sorted), "side-cross produced %d of %d elements", len(out), len(sorted))

	return out
}

// middleOut starts at the median of a sorted slice (the left one of the two
// middle elements when the length is even) and walks outward, taking the
// next element on the left before the next one on the right. Once one side
// runs out the other is drained.
func middleOut[T any](sorted []T) []T {
	n := len(sorted)
	if n == 0 {
		return nil
	}

	mid := (n - 1) / 2

	out := make([]T, 0, n)
	out = append(out, sorted[mid])

	for left, right := mid-1, mid+1; left >= 0 || right < n; left, right = left-1, right+1 {
		if left >= 0 {
			out = append(out, sorted[left])
		}

		if right < n {
			out = append(out, sorted[right])
		}
	}

	assert.Len(out, n, "middle-out produced %d of %d elements", len(out), n)

	return out
}
