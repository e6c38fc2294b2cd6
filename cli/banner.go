package cli

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment of text inside a Banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	bannerPadding   = 2
	dividerPadding  = 2
	truncateReserve = 1
	halfDivisor     = 2
)

// DefaultTerminalWidth is used when callers don't know the terminal size.
const DefaultTerminalWidth = 80

// Divider returns a horizontal rule of the given width, with a trailing newline.
func Divider(width int) string {
	if width < dividerPadding {
		width = dividerPadding
	}

	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-dividerPadding), dividerRight)
}

// Banner draws s inside a box of the given width. Multi-line input gets one
// row per line; lines that don't fit are truncated with an ellipsis.
// Returns "" for empty input, a width too small to hold the box, or an
// unknown alignment.
func Banner(s string, width int, alignment Alignment) string {
	if s == "" || width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range getLines(s) {
		var line string

		switch alignment {
		case AlignCenter:
			line = pad(l, inner, func(diff int) (int, int) {
				return diff / halfDivisor, diff - diff/halfDivisor
			})
		case AlignLeft:
			line = pad(l, inner, func(diff int) (int, int) { return 0, diff })
		case AlignRight:
			line = pad(l, inner, func(diff int) (int, int) { return diff, 0 })
		default:
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n")
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the first n graphic runes of s and reports how many it kept.
func truncateGraphic(s string, n int) (string, int) {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	return sb.String(), count
}

// pad fits text into width, asking split how many spaces go left and right.
func pad(text string, width int, split func(diff int) (int, int)) string {
	length := countGraphic(text)
	if length == width {
		return text
	}

	str := text
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
		length++
	}

	left, right := split(width - length)

	return strings.Repeat(" ", left) + str + strings.Repeat(" ", right)
}
