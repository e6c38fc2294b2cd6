package container

import "errors"

var (
	// ErrNotFound is returned by Container.Remove when no element matches.
	ErrNotFound = errors.New("element not found in container")

	// ErrOutOfRange is returned when a cursor is dereferenced outside its view.
	ErrOutOfRange = errors.New("cursor out of range")

	// ErrModified is reported when the container behind a live view changes
	// while one of the view's cursors is still in use.
	ErrModified = errors.New("container modified during traversal")

	// ErrUnknownOrder is returned by ParseOrder for names it doesn't recognize.
	ErrUnknownOrder = errors.New("unknown order")
)
