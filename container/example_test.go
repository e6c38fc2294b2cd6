package container_test

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-container/container"
)

func Example() {
	c := container.New(7, 15, 6, 1, 2)

	fmt.Println("size:", c.Size())
	fmt.Println("ascending:", container.AscendingOrder(c).Entries())
	fmt.Println("descending:", container.DescendingOrder(c).Entries())
	fmt.Println("side-cross:", container.SideCrossOrder(c).Entries())
	fmt.Println("reverse:", container.ReverseOrder(c).Entries())
	fmt.Println("insertion:", container.InsertionOrder(c).Entries())
	fmt.Println("middle-out:", container.MiddleOutOrder(c).Entries())

	// Output:
	// size: 5
	// ascending: [1 2 6 7 15]
	// descending: [15 7 6 2 1]
	// side-cross: [1 15 2 7 6]
	// reverse: [2 1 6 15 7]
	// insertion: [7 15 6 1 2]
	// middle-out: [6 2 7 1 15]
}

func ExampleContainer_Remove() {
	c := container.New(5, 5, 1)

	if err := c.Remove(5); err != nil {
		fmt.Println(err)
	}

	fmt.Println(c.Elements())

	err := c.Remove(5)
	fmt.Println(errors.Is(err, container.ErrNotFound))

	// Output:
	// [1]
	// true
}

func ExampleReverseOrder() {
	c := container.New(1, 2, 3)

	live := container.ReverseOrder(c)
	frozen := container.AscendingOrder(c)

	c.Add(0)

	fmt.Println(live.Entries())
	fmt.Println(frozen.Entries())

	// Output:
	// [0 3 2 1]
	// [1 2 3]
}

func ExampleView_Begin() {
	view := container.MiddleOutOrder(container.New(10, 20, 30, 40))

	for cur := view.Begin(); !cur.Done(); cur = cur.Next() {
		v, err := cur.Value()
		if err != nil {
			fmt.Println(err)

			return
		}

		fmt.Println(cur.Position(), v)
	}

	// Output:
	// 0 20
	// 1 10
	// 2 30
	// 3 40
}
