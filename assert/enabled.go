//go:build !assertions_disabled

package assert

// True panics unless value is true.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message(args...))
}

// False panics unless value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Len panics unless the slice has exactly n elements.
func Len[T any](slice []T, n int, args ...any) {
	if len(slice) == n {
		return
	}

	if len(args) == 0 {
		panic(message("expected %d elements, got %d", n, len(slice)))
	}

	panic(message(args...))
}
