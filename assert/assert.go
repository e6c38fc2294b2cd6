// Package assert provides invariant checks that panic when violated.
//
// Checks are compiled in by default. Building with the assertions_disabled
// tag turns every check into a no-op.
package assert

import "fmt"

// message builds the panic message for a failed check.
// If the first arg is a string, it's used as a format string with the remaining args.
// Otherwise, all args are included in the message.
func message(args ...any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
