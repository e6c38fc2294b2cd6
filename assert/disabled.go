//go:build assertions_disabled

package assert

// True is a no-op when assertions are disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when assertions are disabled.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// Len is a no-op when assertions are disabled.
func Len[T any](slice []T, n int, args ...any) {
	// Intentionally left blank
}
