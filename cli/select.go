// Package cli holds small terminal helpers: boxed banners for section
// headers and an interactive single-choice prompt.
package cli

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrNoChoices is returned by Select when there is nothing to choose from.
var ErrNoChoices = errors.New("no choices to select from")

// Select shows an interactive list and returns the index and text of the
// chosen entry. Typing filters the list by prefix.
func Select(label string, choices ...string) (int, string, error) {
	if len(choices) == 0 {
		return -1, "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label: label,
		Items: choices,
		Searcher: func(input string, index int) bool {
			if len(input) == 0 {
				return true
			}

			return strings.HasPrefix(strings.ToLower(choices[index]), strings.ToLower(input))
		},
	}

	return sel.Run()
}
